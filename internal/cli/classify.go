package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/geoknoesis/sparql-go/sparql"
)

// ClassifyOptions holds flags for the classify command.
type ClassifyOptions struct {
	*RootOptions
	File string
}

// NewClassifyCommand creates the classify command, which prints the query
// form without contacting any endpoint.
func NewClassifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ClassifyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "classify [query-text]",
		Short: "Print the form of a query (SELECT, ASK, CONSTRUCT, DESCRIBE, UPDATE)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := ""
			switch {
			case opts.File != "":
				data, err := os.ReadFile(opts.File)
				if err != nil {
					return WrapExitError(ExitUsage, "failed to read query file", err)
				}
				text = string(data)
			case len(args) == 1:
				text = args[0]
			default:
				return &ExitError{Code: ExitUsage, Err: fmt.Errorf("no query text; pass it as an argument or via --file")}
			}
			fmt.Fprintln(cmd.OutOrStdout(), sparql.Classify(text).String())
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.File, "file", "", "read the query text from a file")
	return cmd
}
