package apiclient

import (
	"context"
	"errors"
	"sync"
)

// TokenSource yields the bearer token sent to admin-only endpoints
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// FetchFunc obtains a fresh access token
type FetchFunc func(ctx context.Context) (string, error)

// CachedToken fetches a token on first use and reuses it for its lifetime.
// It never refreshes; a failed fetch is not cached and is retried on the next call.
type CachedToken struct {
	mu    sync.Mutex
	fetch FetchFunc
	token string
}

// NewCachedToken creates a token cache backed by fetch
func NewCachedToken(fetch FetchFunc) *CachedToken {
	return &CachedToken{fetch: fetch}
}

// Token returns the cached token, fetching it if none is held yet
func (c *CachedToken) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" {
		return c.token, nil
	}

	token, err := c.fetch(ctx)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", errors.New("token source returned an empty token")
	}
	c.token = token
	return token, nil
}

// StaticToken is a TokenSource that always returns the same token
type StaticToken string

// Token returns the static token
func (s StaticToken) Token(context.Context) (string, error) {
	return string(s), nil
}
