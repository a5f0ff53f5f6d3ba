package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mzali/radio-booking/internal/auth"
)

// Client is the shared HTTP plumbing under every remote collection.  It
// knows the API base URL, the token source that supplies per-call bearer
// credentials, and the HTTP client used for all requests.
type Client struct {
	base   string
	tokens auth.TokenSource
	http   *http.Client
}

// NewClient builds a Client for the given API base URL.  The timeout
// bounds each individual request; there is no retry.
func NewClient(baseURL string, tokens auth.TokenSource, timeout time.Duration) *Client {
	return &Client{
		base:   strings.TrimRight(baseURL, "/"),
		tokens: tokens,
		http:   &http.Client{Timeout: timeout},
	}
}

// do performs one JSON request against the remote API.  The bearer
// credential is acquired from the token source right before the request is
// issued; if none is available the request is never sent.  A non-2xx
// response becomes a *RemoteError tagged with the collection and operation
// names.  When out is non-nil the response body is decoded into it.
func (c *Client) do(ctx context.Context, collection, op, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s %s: encode request: %w", op, collection, err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return fmt.Errorf("%s %s: build request: %w", op, collection, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Fresh credential per call. Tokens from the identity provider expire
	// quickly, so reusing one across calls would start failing mid-session.
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", op, collection, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return &RemoteError{Collection: collection, Op: op, Status: resp.StatusCode}
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s %s: decode response: %w", op, collection, err)
		}
	}
	return nil
}
