// Package webhook posts encoded card messages to a chat incoming webhook.
// It makes exactly one attempt per Send; retrying is left to the caller.
package webhook

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/reoring/chatcard"
)

const maxResponseBody = 1024 // 1KB cap on captured response bodies

// StatusError reports a non-2xx answer from the webhook.
type StatusError struct {
	StatusCode int
	Body       string // First bytes of the response body.
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("webhook: unexpected status %d: %s", e.StatusCode, e.Body)
}

// Result describes a delivered message.
type Result struct {
	StatusCode int
	Response   string // First bytes of the response body.
}

// Client sends messages to one webhook URL. It is safe for concurrent use.
type Client struct {
	cfg  Config
	http *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Its Timeout is
// overwritten by Config.Timeout. A nil hc keeps the default client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc == nil {
			return
		}
		cp := *hc
		c.http = &cp
	}
}

// New validates cfg and returns a Client.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Client{cfg: cfg.withDefaults(), http: &http.Client{}}
	for _, o := range opts {
		o(c)
	}
	c.http.Timeout = c.cfg.Timeout
	return c, nil
}

// Send encodes msg and posts it. The message is validated first and invalid
// messages are never sent; their chatcard.Issues are returned as is.
func (c *Client) Send(ctx context.Context, msg *chatcard.Message) (Result, error) {
	body, err := chatcard.Encode(msg)
	if err != nil {
		return Result{}, err
	}
	return c.SendRaw(ctx, body)
}

// SendRaw posts an already encoded JSON body.
func (c *Client) SendRaw(ctx context.Context, body []byte) (Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("webhook: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.http.Do(req) //nolint:gosec // URL is the configured webhook destination.
	if err != nil {
		return Result{}, fmt.Errorf("webhook: post: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return Result{StatusCode: resp.StatusCode}, fmt.Errorf("webhook: read response: %w", err)
	}
	res := Result{StatusCode: resp.StatusCode, Response: string(respBody)}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return res, &StatusError{StatusCode: resp.StatusCode, Body: res.Response}
	}
	return res, nil
}
