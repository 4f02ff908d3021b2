package api

import (
	"bytes"
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

// ErrUnauthorized is wrapped when the backend answers 401
var ErrUnauthorized = errors.New("unauthorized")

// maxErrorBody caps how much of an error response is kept in HTTPError
const maxErrorBody = 512

// TokenSource supplies the bearer token for outbound calls
type TokenSource interface {
	AccessToken() string
}

// HTTPError is returned for any non-2xx response
type HTTPError struct {
	Op     string
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s failed (%d): %s", e.Op, e.Status, e.Body)
}

// Unwrap maps 401 to ErrUnauthorized
func (e *HTTPError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// Client talks to the CoinMind backend
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// NewClient creates a backend client. tokens may be nil for anonymous use.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: timeout}, tokens)
}

// NewClientWithHTTP creates a backend client on top of an existing http.Client
func NewClientWithHTTP(baseURL string, hc *http.Client, tokens TokenSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
		tokens:  tokens,
	}
}

// request describes one backend call
type request struct {
	op          string
	method      string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
}

// do sends the request with the bearer token attached and returns the
// response body of a 2xx answer.
func (c *Client) do(ctx context.Context, r request) ([]byte, error) {
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u, r.body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.op, err)
	}
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	req.Header.Set("Accept", "application/json")
	if c.tokens != nil {
		if token := c.tokens.AccessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: reading response: %w", r.op, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body := strings.TrimSpace(string(data))
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return nil, &HTTPError{Op: r.op, Status: resp.StatusCode, Body: body}
	}
	return data, nil
}

// jsonRequest builds a request carrying in as a JSON body
func jsonRequest(op, method, path string, in any) (request, error) {
	r := request{op: op, method: method, path: path}
	if in == nil {
		return r, nil
	}
	payload, err := json.Marshal(in)
	if err != nil {
		return r, fmt.Errorf("%s: %w", op, err)
	}
	r.body = bytes.NewReader(payload)
	r.contentType = "application/json"
	return r, nil
}

// doJSON marshals in (when non-nil), sends the request and decodes the
// answer into out (when non-nil).
func (c *Client) doJSON(ctx context.Context, op, method, path string, query url.Values, in, out any) error {
	r, err := jsonRequest(op, method, path, in)
	if err != nil {
		return err
	}
	r.query = query

	data, err := c.do(ctx, r)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: decoding response: %w", op, err)
	}
	return nil
}
