// Package bloodlink is the typed client for the BloodLink REST API. It owns
// the outbound HTTP configuration (base URL, JSON headers), attaches a bearer
// credential to every request through an injected token getter, and unwraps
// the API's {success, message, data} envelope into typed results.
package bloodlink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultTimeout bounds every request unless the caller supplies a client.
const DefaultTimeout = 30 * time.Second

// TokenGetter fetches a fresh session credential before a request. An empty
// token means "no session": the request proceeds unauthenticated rather than
// failing closed. The template names which identity-provider token shape to
// mint; callers normally pass the configured default.
type TokenGetter func(ctx context.Context, template string) (string, error)

// Config holds the constructor inputs for a Client. TokenGetter is an
// explicit dependency rather than a process-global slot, so there is no
// register/clear lifecycle to race on.
type Config struct {
	BaseURL       string
	TokenGetter   TokenGetter
	TokenTemplate string
	Timeout       time.Duration
	HTTPClient    *http.Client
}

// Client is the single shared HTTP client for the BloodLink API.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	logger        *zap.Logger
	getToken      TokenGetter
	tokenTemplate string

	// credMu serializes the credential-fetch-and-attach sequence so two
	// concurrent requests cannot race on the identity provider's refresh
	// side effects. It does not cache the token; every request re-invokes
	// the getter.
	credMu sync.Mutex
}

// New creates a Client. The base URL must be absolute; a trailing slash is
// tolerated.
func New(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", cfg.BaseURL, err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	template := cfg.TokenTemplate
	if template == "" {
		template = "default"
	}

	return &Client{
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:    httpClient,
		logger:        logger,
		getToken:      cfg.TokenGetter,
		tokenTemplate: template,
	}, nil
}

// do issues one request and returns the raw body and status code. Transport
// failures are returned as wrapped errors; HTTP-level failures are left for
// the envelope decoder, except 401 which is diagnosed here.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, int, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	c.attachCredential(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// Observed and surfaced, never retried here. Session refresh is
		// the identity provider's job.
		c.logger.Warn("request rejected with 401",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID))
	}

	return raw, resp.StatusCode, nil
}

// attachCredential fetches a token and sets the Authorization header while
// holding the credential mutex. A getter failure is logged and swallowed so
// the request goes out unauthenticated; the API answers 401 and the caller
// sees that instead of a local error.
func (c *Client) attachCredential(ctx context.Context, req *http.Request) {
	if c.getToken == nil {
		return
	}

	c.credMu.Lock()
	defer c.credMu.Unlock()

	token, err := c.getToken(ctx, c.tokenTemplate)
	if err != nil {
		c.logger.Debug("credential fetch failed, sending request unauthenticated", zap.Error(err))
		return
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}
