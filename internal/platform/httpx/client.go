package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultTimeout = 10 * time.Second

	// Error bodies beyond this are truncated.
	maxErrorBody = 64 << 10

	redacted = "REDACTED"
)

// StatusError is returned for any response with status >= 400.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

// Client issues JSON GET requests against one upstream.
// Requests are sent once; failures are returned to the caller as-is.
type Client struct {
	session *http.Client
	baseURL string
	headers http.Header
	secrets map[string]struct{}
}

func NewClient(baseURL string, session *http.Client) *Client {
	if session == nil {
		session = &http.Client{Timeout: DefaultTimeout}
	}

	return &Client{
		session: session,
		baseURL: strings.TrimRight(baseURL, "/"),
		headers: http.Header{},
		secrets: map[string]struct{}{},
	}
}

// SetHeader sets a header sent with every request.
func (c *Client) SetHeader(key, value string) {
	c.headers.Set(key, value)
}

// SetSecretParam marks a query parameter whose value must never appear in
// returned errors.
func (c *Client) SetSecretParam(name string) {
	c.secrets[name] = struct{}{}
}

func (c *Client) newRequest(
	ctx context.Context,
	method string,
	path string,
	query url.Values,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	for k, vs := range c.headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}

	return req, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.session.Do(req)
	if err != nil {
		return nil, c.redact(err)
	}
	if resp.StatusCode >= 400 {
		defer resp.Body.Close()
		b, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		body := strings.TrimSpace(string(b))
		if readErr != nil {
			body = fmt.Sprintf("%s (read body: %v)", body, readErr)
		}
		return nil, &StatusError{
			Code: resp.StatusCode,
			Body: body,
		}
	}
	return resp, nil
}

// redact rewrites the URL carried by a transport error so secret query
// values are replaced.
func (c *Client) redact(err error) error {
	var ue *url.Error
	if len(c.secrets) == 0 || !errors.As(err, &ue) {
		return err
	}

	u, parseErr := url.Parse(ue.URL)
	if parseErr != nil {
		return &url.Error{Op: ue.Op, URL: redacted, Err: ue.Err}
	}

	q := u.Query()
	for name := range c.secrets {
		if q.Has(name) {
			q.Set(name, redacted)
		}
	}
	u.RawQuery = q.Encode()

	return &url.Error{Op: ue.Op, URL: u.String(), Err: ue.Err}
}

// GetJSON performs a GET on path with query and decodes the body into out.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, query)
	if err != nil {
		return err
	}

	resp, err := c.do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
