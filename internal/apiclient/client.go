package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/rentzila/e2e/internal/config"
)

// ErrUnauthorized is returned when the backend rejects the credentials or token
var ErrUnauthorized = errors.New("backend rejected credentials")

// BackcallFinder checks whether a consultation request reached the backend
type BackcallFinder interface {
	FindBackcall(ctx context.Context, name, phone string) (bool, error)
}

// Backcall is one entry of the backend backcall listing
type Backcall struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// tokenRequest is the body of the JWT create call
type tokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// tokenResponse is the JWT create response
type tokenResponse struct {
	Access string `json:"access"`
}

// Client talks to the marketplace backend for out-of-band verification
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     *slog.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithTokenSource replaces the default admin token cache
func WithTokenSource(tokens TokenSource) Option {
	return func(c *Client) { c.tokens = tokens }
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a backend client. Unless WithTokenSource is given, admin
// requests authenticate as admin once and reuse that token.
func New(baseURL string, admin config.Account, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.tokens == nil {
		c.tokens = NewCachedToken(func(ctx context.Context) (string, error) {
			return c.CreateAccessToken(ctx, admin.Email, admin.Password)
		})
	}
	return c
}

// CreateAccessToken exchanges credentials for a JWT access token
func (c *Client) CreateAccessToken(ctx context.Context, email, password string) (string, error) {
	// Marshal request
	reqBody, err := json.Marshal(tokenRequest{Email: email, Password: password})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/auth/jwt/create/", bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := c.do(req)
	if err != nil {
		return "", err
	}

	// Parse response
	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if tokenResp.Access == "" {
		return "", errors.New("token response has no access token")
	}

	c.logger.Debug("admin access token created", "email", email)
	return tokenResp.Access, nil
}

// ListBackcalls returns every backcall the backend holds
func (c *Client) ListBackcalls(ctx context.Context) ([]Backcall, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/backcall/", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var backcalls []Backcall
	if err := json.Unmarshal(body, &backcalls); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return backcalls, nil
}

// FindBackcall reports whether a backcall with exactly this name and phone exists
func (c *Client) FindBackcall(ctx context.Context, name, phone string) (bool, error) {
	backcalls, err := c.ListBackcalls(ctx)
	if err != nil {
		return false, err
	}

	for _, b := range backcalls {
		if b.Name == name && b.Phone == phone {
			c.logger.Debug("backcall found", "name", name, "phone", phone)
			return true, nil
		}
	}

	c.logger.Debug("backcall not found", "name", name, "phone", phone, "scanned", len(backcalls))
	return false, nil
}

// do sends req and returns the body of a 2xx response
func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	// Read response body
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	// Check status code
	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		c.logger.Warn("backend rejected request", "path", req.URL.Path, "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: %s %s returned status %d", ErrUnauthorized, req.Method, req.URL.Path, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.logger.Warn("backend API error", "path", req.URL.Path, "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}
