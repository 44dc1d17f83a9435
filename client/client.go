// Package client is a typed HTTP client for the coursehub API.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Options configures a Client.
type Options struct {
	BaseURL    string // scheme://host:port
	APIPrefix  string // mount point of the API routes, e.g. "/api"
	Token      string
	Timeout    time.Duration
	RetryCount int
}

// Client wraps resty with one method per API route.
type Client struct {
	http   *resty.Client
	prefix string
}

// APIError is a non-2xx answer decoded from the {"error", "fields"} body.
type APIError struct {
	StatusCode int
	Message    string            `json:"error"`
	Fields     map[string]string `json:"fields,omitempty"`
}

func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("coursehub: %d %s %v", e.StatusCode, e.Message, e.Fields)
	}
	return fmt.Sprintf("coursehub: %d %s", e.StatusCode, e.Message)
}

func IsNotFound(err error) bool { return hasStatus(err, http.StatusNotFound) }

// IsAlreadyEnrolled reports the duplicate-enrollment rejection.
func IsAlreadyEnrolled(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusBadRequest &&
		strings.Contains(strings.ToLower(apiErr.Message), "already enrolled")
}

func IsValidation(err error) bool { return hasStatus(err, http.StatusUnprocessableEntity) }

func IsUnavailable(err error) bool { return hasStatus(err, http.StatusServiceUnavailable) }

func hasStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// New validates the base URL and builds the underlying resty client.
func New(opts Options) (*Client, error) {
	parsed, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return nil, fmt.Errorf("base URL must be absolute, got: %s", opts.BaseURL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("base URL scheme must be http or https, got: %s", parsed.Scheme)
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}

	rc := resty.New().
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetTimeout(opts.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetRetryCount(opts.RetryCount).
		SetRetryWaitTime(100 * time.Millisecond).
		SetRetryMaxWaitTime(2 * time.Second).
		AddRetryCondition(retryCondition)
	if opts.Token != "" {
		rc.SetAuthToken(opts.Token)
	}

	prefix := strings.TrimRight(opts.APIPrefix, "/")
	if prefix != "" && !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	return &Client{http: rc, prefix: prefix}, nil
}

// SetToken sets the bearer token sent on every request.
func (c *Client) SetToken(token string) {
	c.http.SetAuthToken(token)
}

// retryCondition retries network failures and 503 while the store is down.
func retryCondition(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if r == nil {
		return false
	}
	code := r.StatusCode()
	return code == http.StatusServiceUnavailable || code == http.StatusBadGateway || code == http.StatusGatewayTimeout
}

// api issues a request against a route mounted under the API prefix.
func (c *Client) api(ctx context.Context, method, path string, body, out any, query url.Values) error {
	return c.do(ctx, method, c.prefix+path, body, out, query)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, query url.Values) error {
	apiErr := &APIError{}
	req := c.http.R().SetContext(ctx).SetError(apiErr)
	if body != nil {
		req.SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		apiErr.StatusCode = resp.StatusCode()
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode())
		}
		return apiErr
	}
	return nil
}

func escape(s string) string { return url.PathEscape(s) }
