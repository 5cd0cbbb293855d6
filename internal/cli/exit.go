package cli

import (
	"fmt"

	"github.com/geoknoesis/sparql-go/sparql"
)

// Exit codes per failure class, so scripts can branch on the outcome
// without parsing stderr.
const (
	ExitUsage   = 2
	ExitNetwork = 10
	ExitCORS    = 11
	ExitTimeout = 12
	ExitHTTP    = 13
	ExitSPARQL  = 14
	ExitParse   = 15
	ExitUnknown = 1
)

// ExitError carries a process exit code alongside the underlying error.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error { return e.Err }

// WrapExitError attaches an exit code and a context message to an error.
func WrapExitError(code int, msg string, err error) *ExitError {
	return &ExitError{Code: code, Err: fmt.Errorf("%s: %w", msg, err)}
}

// exitCodeFor maps an error kind to its exit code.
func exitCodeFor(kind sparql.ErrorKind) int {
	switch kind {
	case sparql.ErrNetwork:
		return ExitNetwork
	case sparql.ErrCORS:
		return ExitCORS
	case sparql.ErrTimeout:
		return ExitTimeout
	case sparql.ErrHTTP:
		return ExitHTTP
	case sparql.ErrSPARQL:
		return ExitSPARQL
	case sparql.ErrParse:
		return ExitParse
	default:
		return ExitUnknown
	}
}
