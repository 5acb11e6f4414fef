// Package client issues one HTTP call per user action against the inference
// backend and classifies the outcome as success, HTTP failure or transport failure.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"toolboard/internal/logger"
)

// maxErrorBody bounds how much of a failed response body is kept for logs.
const maxErrorBody = 512

// Validator is implemented by response shapes that carry required fields.
type Validator interface {
	Validate() error
}

// Client is stateless between calls: no retry, no cache, no overall timeout.
// A hung backend keeps the call open until ctx is done.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the backend rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   10 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 10 * time.Second,
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 5,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend root the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Send performs method on path with payload encoded as JSON (nil sends no
// body) and decodes a 2xx response into out. When out implements Validator,
// a Validate failure is reported as a transport failure.
//
// Errors are *HTTPError for non-2xx statuses and *TransportError otherwise.
func (c *Client) Send(ctx context.Context, method, path string, payload, out any) error {
	log := logger.FromContext(ctx).With(zap.String("method", method), zap.String("path", path))

	transportErr := func(err error) error {
		log.Warn("request failed without a usable response", zap.Error(err))
		return &TransportError{Method: method, Path: path, Err: err}
	}

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return transportErr(fmt.Errorf("encode request: %w", err))
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return transportErr(fmt.Errorf("build request: %w", err))
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportErr(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		log.Warn("backend returned failure status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", excerpt),
			zap.Duration("elapsed", time.Since(start)))
		return &HTTPError{Method: method, Path: path, Status: resp.StatusCode}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return transportErr(fmt.Errorf("decode response: %w", err))
		}
		if v, ok := out.(Validator); ok {
			if err := v.Validate(); err != nil {
				return transportErr(fmt.Errorf("unexpected response shape: %w", err))
			}
		}
	}

	log.Debug("request completed", zap.Int("status", resp.StatusCode), zap.Duration("elapsed", time.Since(start)))
	return nil
}
