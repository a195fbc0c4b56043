// Package backend is the HTTP client for the external inventory,
// booking and payment REST API.  The gateway owns no bus, route or
// booking persistence of its own; every read and write in that domain
// goes through this client.  All failures, transport-level or non-2xx,
// surface as *Error so handlers can translate them uniformly.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Error describes a failed backend call.  StatusCode is zero when the
// request never produced an HTTP response (dial failure, timeout,
// cancelled context).
type Error struct {
	Op         string // short operation name, e.g. "create booking"
	StatusCode int    // HTTP status of the upstream response, 0 on transport failure
	Body       string // truncated upstream response body, for logs
	Err        error  // underlying transport error, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("backend: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("backend: %s: upstream status %d", e.Op, e.StatusCode)
}

func (e *Error) Unwrap() error { return e.Err }

// Client talks to the backend REST API rooted at baseURL (typically
// ".../api").  It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client for the given base URL.  The timeout bounds
// every individual call, covering both booking creation and payment
// processing.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// maxErrBody caps how much of an upstream error body is retained.
const maxErrBody = 2048

// call performs one request against the backend.  in (when non-nil) is
// JSON-encoded as the request body; out (when non-nil) receives the
// decoded response.  Any non-2xx status becomes an *Error carrying the
// status and a body excerpt.
func (c *Client) call(ctx context.Context, op, method, path string, query url.Values, in, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return &Error{Op: op, Err: fmt.Errorf("encode request: %w", err)}
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return &Error{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))
		return &Error{Op: op, StatusCode: resp.StatusCode, Body: string(excerpt)}
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &Error{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values, out any) error {
	return c.call(ctx, op, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, op, path string, in, out any) error {
	return c.call(ctx, op, http.MethodPost, path, nil, in, out)
}

func (c *Client) put(ctx context.Context, op, path string, in, out any) error {
	return c.call(ctx, op, http.MethodPut, path, nil, in, out)
}

func (c *Client) delete(ctx context.Context, op, path string) error {
	return c.call(ctx, op, http.MethodDelete, path, nil, nil, nil)
}
