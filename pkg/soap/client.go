package soap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// HTTPClient is a client which can make HTTP requests.
// An example implementation is net/http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// maxResponseSize bounds how much of a response body is read (10MB).
const maxResponseSize = 10 << 20

type options struct {
	client    HTTPClient
	timeout   time.Duration
	userAgent string
	headers   map[string]string
}

var defaultOptions = options{
	timeout:   30 * time.Second,
	userAgent: "plunet-connector/1.0",
}

// An Option configures the transport client.
type Option func(*options)

// WithHTTPClient sets the HTTP client to use. It overrides WithTimeout.
func WithHTTPClient(c HTTPClient) Option {
	return func(o *options) {
		o.client = c
	}
}

// WithTimeout sets the end-to-end request timeout applied when the
// caller's context carries no deadline of its own.
func WithTimeout(t time.Duration) Option {
	return func(o *options) {
		o.timeout = t
	}
}

// WithUserAgent sets the User-Agent header value.
func WithUserAgent(userAgent string) Option {
	return func(o *options) {
		o.userAgent = userAgent
	}
}

// WithHTTPHeaders sets additional HTTP headers for all requests.
func WithHTTPHeaders(headers map[string]string) Option {
	return func(o *options) {
		o.headers = headers
	}
}

// Client posts SOAP envelopes over HTTP(S). It is safe for concurrent
// use; it holds no per-request state.
type Client struct {
	opts options
}

// NewClient creates a new transport client.
func NewClient(opt ...Option) *Client {
	opts := defaultOptions
	for _, o := range opt {
		o(&opts)
	}
	if opts.client == nil {
		opts.client = &http.Client{}
	}
	return &Client{opts: opts}
}

// TransportError reports that a request never produced a usable HTTP
// response: connection failure, timeout, or an unreadable body.
type TransportError struct {
	URL string
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error for %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error { return e.Err }

// HTTPError reports a reply with an HTTP error status. The response
// body is delivered separately so callers can inspect it for a SOAP
// fault before treating the status as fatal.
type HTTPError struct {
	StatusCode int
	URL        string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP status %d from %s", e.StatusCode, e.URL)
}

// Send posts an envelope to url with the given SOAPAction and returns
// the raw response body.
//
// A non-2xx reply still returns the body, paired with an *HTTPError;
// SOAP servers routinely deliver faults with status 500. Network and
// timeout failures return "" and a *TransportError. Send never
// retries; retry policy belongs to the caller.
func (c *Client) Send(ctx context.Context, url, soapAction, envelope string) (string, error) {
	if _, ok := ctx.Deadline(); !ok && c.opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(envelope))
	if err != nil {
		return "", &TransportError{URL: url, Err: err}
	}

	req.Header.Set("Content-Type", ContentType)
	req.Header.Set("SOAPAction", `"`+soapAction+`"`)
	req.Header.Set("User-Agent", c.opts.userAgent)
	req.Header.Set("Accept", "*/*")
	for k, v := range c.opts.headers {
		req.Header.Set(k, v)
	}

	res, err := c.opts.client.Do(req)
	if err != nil {
		return "", &TransportError{URL: url, Err: err}
	}
	defer func() { _ = res.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxResponseSize))
	if err != nil {
		return "", &TransportError{URL: url, Err: err}
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return string(body), &HTTPError{StatusCode: res.StatusCode, URL: url}
	}
	return string(body), nil
}
