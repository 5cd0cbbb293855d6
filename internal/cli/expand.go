package cli

import (
	"encoding/json"
	"fmt"

	ld "github.com/piprate/json-gold/ld"
)

// expandJSONLD runs the JSON-LD expansion algorithm over a graph result
// body and returns the expanded document, indented. Expansion is local:
// no remote contexts are fetched.
func expandJSONLD(raw string) (string, error) {
	var doc interface{}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return "", fmt.Errorf("graph body is not valid JSON: %w", err)
	}

	proc := ld.NewJsonLdProcessor()
	expanded, err := proc.Expand(doc, ld.NewJsonLdOptions(""))
	if err != nil {
		return "", fmt.Errorf("expand: %w", err)
	}

	out, err := json.MarshalIndent(expanded, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
