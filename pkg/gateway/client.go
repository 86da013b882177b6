// Package gateway sends a multi-provider envelope to an AI gateway's
// universal endpoint and extracts the authoritative result.
//
// The gateway fans a single request out to every provider in the envelope:
//
//	rizz --> Gateway --> [openai, anthropic]
//
// and answers with the first provider's response.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ConfigKeyURL is the configuration key holding the gateway URL.
const ConfigKeyURL = "gateway.url"

// Config is the gateway client configuration.
type Config struct {
	// URL is the gateway's universal endpoint
	// (e.g., "https://gateway.ai.cloudflare.com/v1/<account>/<gateway>")
	URL string

	// Timeout bounds a single round-trip. Zero means no client-side timeout.
	Timeout time.Duration

	// Logger is the provided zap logger
	Logger *zap.Logger
}

// Client dispatches envelopes to the gateway. It holds no per-request state
// and is safe for concurrent use.
type Client struct {
	url        string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new gateway Client.
func NewClient(c Config) *Client {
	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		url:    c.URL,
		logger: logger,
		httpClient: &http.Client{
			Timeout: c.Timeout,
		},
	}
}

// Dispatch POSTs the envelope as a JSON array to the gateway and returns the
// raw response body. It makes exactly one request: no retries, no fallback.
//
// Errors:
//   - *ConfigurationError when no gateway URL is configured
//   - *NetworkError when the gateway cannot be reached or read, or answers
//     with a body that is not JSON
//   - *GatewayError for any 4xx or 5xx status, whatever the body
func (c *Client) Dispatch(ctx context.Context, envelope Envelope) ([]byte, error) {
	if c.url == "" {
		return nil, &ConfigurationError{Key: ConfigKeyURL}
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("encoding gateway envelope: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating gateway request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	c.logger.Debug("dispatching envelope to gateway",
		zap.Strings("providers", envelope.Providers()),
		zap.Int("body_bytes", len(body)),
	)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode >= http.StatusBadRequest {
		// Drain so the connection can be reused; the body is not inspected.
		_, _ = io.Copy(io.Discard, httpResp.Body)
		return nil, &GatewayError{StatusCode: httpResp.StatusCode}
	}

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}

	c.logger.Debug("received gateway response",
		zap.Int("status", httpResp.StatusCode),
		zap.Int("body_bytes", len(respBody)),
	)

	if !json.Valid(respBody) {
		return nil, &NetworkError{Err: ErrInvalidResponse}
	}

	return respBody, nil
}
