package sparql

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultMaxGETLength is the longest percent-encoded GET URL the client
// will issue before switching to POST.
const DefaultMaxGETLength = 2000

// Request describes one query or update to execute against an endpoint.
type Request struct {
	// Endpoint is the SPARQL Protocol endpoint URL.
	Endpoint string
	// Query is the raw query or update text, sent verbatim.
	Query string
	// Method optionally forces "GET" or "POST" for non-update queries.
	// Updates always go over POST regardless of this field.
	Method string
	// Format is the preferred result format; empty selects the default
	// for the query form (JSON results, or Turtle for graph queries).
	Format ResultFormat
	// Headers are merged over the defaults the client would set; a
	// caller-supplied header always wins and is never silently dropped.
	Headers map[string]string
	// Timeout bounds the whole call when positive. It shares the
	// per-call cancellation handle with the caller's context: firing
	// either aborts the in-flight request.
	Timeout time.Duration
}

// RequestPlan is the fully-built HTTP request for one call.
type RequestPlan struct {
	// Method is GET or POST.
	Method string
	// URL is the request URL; for GET it embeds the encoded query.
	URL string
	// Header holds the merged headers with case-insensitive unique keys.
	Header http.Header
	// Body is the raw query text for POST, empty for GET.
	Body string
	// Type is the classification the plan was built from.
	Type QueryType
}

// Client executes SPARQL Protocol requests. It is an explicit instance
// rather than a package-level default: a Client holds no per-call state,
// so one instance may serve any number of concurrent calls, and separate
// instances never observe each other. The zero value is usable.
type Client struct {
	// HTTPClient issues the requests; nil means http.DefaultClient. The
	// connection pool it carries is shared infrastructure managed by
	// the caller.
	HTTPClient *http.Client
	// MaxGETLength overrides DefaultMaxGETLength when positive.
	MaxGETLength int
}

// NewClient returns a Client with default settings.
func NewClient() *Client { return &Client{} }

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) maxGETLength() int {
	if c.MaxGETLength > 0 {
		return c.MaxGETLength
	}
	return DefaultMaxGETLength
}

// Plan builds the request for one call without issuing it.
//
// Method selection: updates always POST with an application/sparql-update
// body. Everything else goes over GET when the percent-encoded URL fits
// within MaxGETLength, and over POST with an application/sparql-query
// body otherwise. An explicit Request.Method wins for non-updates.
func (c *Client) Plan(req Request) (*RequestPlan, error) {
	if strings.TrimSpace(req.Endpoint) == "" {
		return nil, &QueryError{Kind: ErrUnknown, Message: "no endpoint URL was given"}
	}
	if _, err := url.Parse(req.Endpoint); err != nil {
		return nil, &QueryError{Kind: ErrUnknown, Message: "the endpoint URL is invalid", Err: err}
	}

	qt := Classify(req.Query)
	plan := &RequestPlan{Header: make(http.Header), Type: qt}

	if qt.IsUpdate() {
		plan.Method = http.MethodPost
		plan.URL = req.Endpoint
		plan.Body = req.Query
		plan.Header.Set("Content-Type", mediaTypeUpdate)
	} else {
		getURL := appendQueryParam(req.Endpoint, req.Query)
		useGET := len(getURL) <= c.maxGETLength()
		switch strings.ToUpper(req.Method) {
		case "":
		case http.MethodGet:
			useGET = true
		case http.MethodPost:
			useGET = false
		default:
			return nil, &QueryError{Kind: ErrUnknown, Message: "unsupported method override " + req.Method}
		}

		if useGET {
			plan.Method = http.MethodGet
			plan.URL = getURL
		} else {
			plan.Method = http.MethodPost
			plan.URL = req.Endpoint
			plan.Body = req.Query
			plan.Header.Set("Content-Type", mediaTypeQuery)
		}
		plan.Header.Set("Accept", AcceptHeader(qt, req.Format))
	}

	// Caller headers merge last and therefore always win.
	for name, value := range req.Headers {
		plan.Header.Set(name, value)
	}
	return plan, nil
}

// Execute runs one call end to end: plan, issue, and decode or classify.
// Exactly one outcome is produced per call; there are no retries, no
// caching, and no logging at this layer. The context is the per-call
// cancellation handle; Request.Timeout attaches a deadline to it, and the
// derived handle is released when the call settles.
func (c *Client) Execute(ctx context.Context, req Request) (Results, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	plan, err := c.Plan(req)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if plan.Body != "" {
		body = strings.NewReader(plan.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, plan.Method, plan.URL, body)
	if err != nil {
		return nil, &QueryError{Kind: ErrUnknown, Message: "could not build the request", Err: err}
	}
	for name, values := range plan.Header {
		for _, v := range values {
			httpReq.Header.Set(name, v)
		}
	}

	resp, err := c.httpClient().Do(httpReq)
	if err != nil {
		return nil, classifyTransport(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransport(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, classifyResponse(resp.StatusCode, string(data))
	}
	return DecodeResults(string(data), resp.Header.Get("Content-Type"))
}

// appendQueryParam builds the GET URL with the percent-encoded query.
func appendQueryParam(endpoint, query string) string {
	sep := "?"
	if strings.Contains(endpoint, "?") {
		sep = "&"
	}
	return endpoint + sep + "query=" + encodeQueryComponent(query)
}

// encodeQueryComponent percent-encodes per RFC 3986, leaving only
// unreserved characters bare. The stdlib escapers are unsuitable here:
// url.QueryEscape writes spaces as '+', and url.PathEscape leaves
// sub-delims like '*' bare, neither of which matches the encoding SPARQL
// endpoints are tested against.
func encodeQueryComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' ||
			c == '-' || c == '.' || c == '_' || c == '~' {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&0x0F])
	}
	return b.String()
}
