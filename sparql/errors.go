package sparql

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrorKind is a programmatic code for the class of a query failure.
type ErrorKind string

const (
	// ErrNetwork indicates the request never produced a response.
	ErrNetwork ErrorKind = "network"
	// ErrCORS indicates the request was blocked as a cross-origin fetch.
	ErrCORS ErrorKind = "cors"
	// ErrTimeout indicates the call was cancelled or its deadline expired.
	ErrTimeout ErrorKind = "timeout"
	// ErrHTTP indicates the endpoint answered with a non-2xx status.
	ErrHTTP ErrorKind = "http"
	// ErrSPARQL indicates the endpoint rejected the query as malformed.
	ErrSPARQL ErrorKind = "sparql"
	// ErrParse indicates a successful response whose body failed to decode.
	ErrParse ErrorKind = "parse"
	// ErrUnknown indicates a failure matching no other class.
	ErrUnknown ErrorKind = "unknown"
)

// maxDetailBytes bounds the response-body excerpt carried by a
// QueryError. One uniform limit applies at every call site.
const maxDetailBytes = 512

// QueryError is the single error value every failure path converges to.
type QueryError struct {
	// Kind classifies the failure.
	Kind ErrorKind
	// Message is a non-empty, human-readable summary.
	Message string
	// HTTPStatus is the response status, if a response was obtained.
	HTTPStatus int
	// Detail is a bounded excerpt of the response body, if any.
	Detail string
	// Err is the underlying cause, if any.
	Err error
}

func (e *QueryError) Error() string {
	var msg strings.Builder
	msg.WriteString("sparql: ")
	msg.WriteString(string(e.Kind))
	if e.HTTPStatus > 0 {
		fmt.Fprintf(&msg, " (HTTP %d)", e.HTTPStatus)
	}
	msg.WriteString(": ")
	msg.WriteString(e.Message)
	if e.Detail != "" {
		msg.WriteString("\n  ")
		msg.WriteString(e.Detail)
	}
	return msg.String()
}

// Unwrap returns the underlying cause.
func (e *QueryError) Unwrap() error { return e.Err }

// Kind returns the error kind for an error, or ErrUnknown for errors that
// are not a *QueryError. Returns empty string for nil.
func Kind(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var qe *QueryError
	if errors.As(err, &qe) {
		return qe.Kind
	}
	return ErrUnknown
}

// httpStatusSummaries are canned summaries for common statuses. Anything
// else gets a generic summary.
var httpStatusSummaries = map[int]string{
	401: "authentication is required by this endpoint",
	403: "access to this endpoint is forbidden",
	404: "no SPARQL endpoint was found at this URL",
	408: "the endpoint gave up waiting for the request",
	500: "the endpoint failed internally while answering the query",
	502: "a gateway in front of the endpoint returned an invalid response",
	503: "the endpoint is temporarily unavailable or overloaded",
	504: "a gateway in front of the endpoint timed out",
}

// syntaxErrorMarkers are substrings that identify a 400 body as a query
// syntax complaint rather than a generic bad request.
var syntaxErrorMarkers = []string{
	"syntax",
	"parse error",
	"parseexception",
	"malformed",
	"lexical",
	"unresolved prefixed name",
}

// classifyTransport maps a failure that produced no usable response to a
// QueryError. Matching order: cancellation first, then cross-origin
// blocking, then plain network failure.
func classifyTransport(err error) *QueryError {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return &QueryError{
			Kind:    ErrTimeout,
			Message: "the request was cancelled before the endpoint answered",
			Err:     err,
		}
	case looksCrossOrigin(err):
		return &QueryError{
			Kind:    ErrCORS,
			Message: "the request was blocked as a cross-origin fetch; the endpoint must allow this origin",
			Err:     err,
		}
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return &QueryError{
			Kind:    ErrTimeout,
			Message: "the endpoint did not answer before the deadline",
			Err:     err,
		}
	}
	return &QueryError{
		Kind:    ErrNetwork,
		Message: "could not reach the endpoint; no response was obtained",
		Err:     err,
	}
}

// classifyResponse maps a non-2xx response to a QueryError. The body is
// read best-effort by the caller and truncated here.
func classifyResponse(status int, body string) *QueryError {
	detail := excerpt(body)

	if status == 400 && looksLikeSyntaxError(body) {
		return &QueryError{
			Kind:       ErrSPARQL,
			Message:    "the endpoint rejected the query as malformed; check the query syntax",
			HTTPStatus: status,
			Detail:     detail,
		}
	}

	summary, ok := httpStatusSummaries[status]
	if !ok {
		summary = fmt.Sprintf("the endpoint returned HTTP %d", status)
	}
	return &QueryError{
		Kind:       ErrHTTP,
		Message:    summary,
		HTTPStatus: status,
		Detail:     detail,
	}
}

// parseError wraps a decode failure of a structurally successful response.
func parseError(msg string, body string, cause error) *QueryError {
	return &QueryError{
		Kind:    ErrParse,
		Message: msg,
		Detail:  excerpt(body),
		Err:     cause,
	}
}

func looksLikeSyntaxError(body string) bool {
	lower := strings.ToLower(body)
	for _, marker := range syntaxErrorMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func looksCrossOrigin(err error) bool {
	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "cors") ||
		strings.Contains(lower, "cross-origin") ||
		strings.Contains(lower, "access-control-allow-origin")
}

// excerpt bounds a response body to maxDetailBytes. Structured JSON error
// bodies are probed for a message field first, so endpoints that wrap
// their diagnostics in JSON still yield a readable excerpt.
func excerpt(body string) string {
	body = strings.TrimSpace(body)
	if body == "" {
		return ""
	}
	if gjson.Valid(body) {
		if msg := gjson.Get(body, "message"); msg.Exists() && msg.String() != "" {
			body = msg.String()
		}
	}
	if len(body) > maxDetailBytes {
		body = body[:maxDetailBytes]
	}
	return body
}
