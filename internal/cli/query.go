package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/geoknoesis/sparql-go/internal/render"
	"github.com/geoknoesis/sparql-go/sparql"
)

// QueryOptions holds flags for the query command.
type QueryOptions struct {
	*RootOptions
	Endpoint  string
	Format    string
	Method    string
	TimeoutMS int
	Headers   []string
	File      string
	Expand    bool
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &QueryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "query [query-text]",
		Short: "Execute a query or update against an endpoint",
		Long: `Execute a SPARQL query or update against an HTTP endpoint.

The query text is taken from the argument, or from --file when given.
SELECT and ASK results print as text; CONSTRUCT/DESCRIBE bodies print
verbatim in whatever serialization the endpoint sent.

Example:
  sparql query --endpoint https://example.org/sparql 'SELECT * WHERE { ?s ?p ?o } LIMIT 5'
  sparql query --endpoint https://example.org/sparql --file update.ru`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(opts, cmd, args)
		},
	}

	cmd.Flags().StringVar(&opts.Endpoint, "endpoint", "", "SPARQL endpoint URL")
	cmd.Flags().StringVar(&opts.Format, "result-format", "", "preferred result format (json|xml|csv|tsv|turtle|ntriples|rdfxml|jsonld)")
	cmd.Flags().StringVar(&opts.Method, "request-method", "", "force GET or POST for non-update queries")
	cmd.Flags().IntVar(&opts.TimeoutMS, "timeout", 0, "request timeout in milliseconds (0 uses the configured default)")
	cmd.Flags().StringArrayVarP(&opts.Headers, "header", "H", nil, "extra request header as 'Name: value' (repeatable)")
	cmd.Flags().StringVar(&opts.File, "file", "", "read the query text from a file")
	cmd.Flags().BoolVar(&opts.Expand, "expand", false, "expand JSON-LD graph results before printing")

	return cmd
}

func runQuery(opts *QueryOptions, cmd *cobra.Command, args []string) error {
	cfg := DefaultConfig()
	if opts.Config != "" {
		loaded, err := LoadConfig(opts.Config)
		if err != nil {
			return WrapExitError(ExitUsage, "failed to load config", err)
		}
		cfg = loaded
	}
	applyFlagOverrides(cfg, opts)

	if cfg.Endpoint == "" {
		return &ExitError{Code: ExitUsage, Err: fmt.Errorf("no endpoint given; set --endpoint or the config file's endpoint key")}
	}

	query, err := queryText(opts, args)
	if err != nil {
		return WrapExitError(ExitUsage, "failed to read query text", err)
	}

	headers, err := parseHeaders(opts.Headers)
	if err != nil {
		return WrapExitError(ExitUsage, "invalid header flag", err)
	}
	for name, value := range cfg.Headers {
		if _, set := headers[name]; !set {
			headers[name] = value
		}
	}
	if _, set := headers["X-Request-Id"]; !set {
		headers["X-Request-Id"] = uuid.NewString()
	}

	var format sparql.ResultFormat
	if cfg.PreferredFormat != "" {
		parsed, ok := sparql.ParseResultFormat(cfg.PreferredFormat)
		if !ok {
			return &ExitError{Code: ExitUsage, Err: fmt.Errorf("unknown result format %q", cfg.PreferredFormat)}
		}
		format = parsed
	}

	client := &sparql.Client{MaxGETLength: cfg.MaxGETLength}
	req := sparql.Request{
		Endpoint: cfg.Endpoint,
		Query:    query,
		Method:   opts.Method,
		Format:   format,
		Headers:  headers,
		Timeout:  time.Duration(cfg.TimeoutMS) * time.Millisecond,
	}

	slog.Debug("executing query",
		"endpoint", cfg.Endpoint,
		"form", sparql.Classify(query).String(),
		"request_id", headers["X-Request-Id"])

	res, err := client.Execute(cmd.Context(), req)
	if err != nil {
		return &ExitError{Code: exitCodeFor(sparql.Kind(err)), Err: err}
	}

	if g, ok := res.(*sparql.GraphResult); ok && opts.Expand && isJSONLD(g.ContentType) {
		expanded, err := expandJSONLD(g.Raw)
		if err != nil {
			return WrapExitError(ExitParse, "failed to expand JSON-LD result", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), expanded)
		return nil
	}

	return render.Text(cmd.OutOrStdout(), res)
}

func applyFlagOverrides(cfg *Config, opts *QueryOptions) {
	if opts.Endpoint != "" {
		cfg.Endpoint = opts.Endpoint
	}
	if opts.TimeoutMS > 0 {
		cfg.TimeoutMS = opts.TimeoutMS
	}
	if opts.Format != "" {
		cfg.PreferredFormat = opts.Format
	}
}

func queryText(opts *QueryOptions, args []string) (string, error) {
	if opts.File != "" {
		data, err := os.ReadFile(opts.File)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
		return args[0], nil
	}
	return "", fmt.Errorf("no query text; pass it as an argument or via --file")
}

// parseHeaders parses repeated "Name: value" flags.
func parseHeaders(flags []string) (map[string]string, error) {
	headers := make(map[string]string, len(flags))
	for _, raw := range flags {
		name, value, found := strings.Cut(raw, ":")
		if !found || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("header %q is not in 'Name: value' form", raw)
		}
		headers[strings.TrimSpace(name)] = strings.TrimSpace(value)
	}
	return headers, nil
}

func isJSONLD(contentType string) bool {
	mediaType := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	return mediaType == "application/ld+json" || mediaType == "application/json"
}
