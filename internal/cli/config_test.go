package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sparql.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
endpoint: https://example.org/sparql
timeout_ms: 5000
max_get_length: 1024
preferred_format: xml
headers:
  Authorization: Bearer token
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/sparql", cfg.Endpoint)
	assert.Equal(t, 5000, cfg.TimeoutMS)
	assert.Equal(t, 1024, cfg.MaxGETLength)
	assert.Equal(t, "xml", cfg.PreferredFormat)
	assert.Equal(t, "Bearer token", cfg.Headers["Authorization"])
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "endpoint: https://example.org/sparql\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().TimeoutMS, cfg.TimeoutMS, "timeout default survives a partial file")
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestParseHeaders(t *testing.T) {
	headers, err := parseHeaders([]string{"Authorization: Bearer x", "X-Tenant:acme"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer x", headers["Authorization"])
	assert.Equal(t, "acme", headers["X-Tenant"])

	_, err = parseHeaders([]string{"no-colon-here"})
	require.Error(t, err)
	_, err = parseHeaders([]string{": empty name"})
	require.Error(t, err)
}
