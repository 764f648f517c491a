package fakeapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/rentzila/e2e/internal/config"
)

// TokenStore records the access tokens handed out by the auth handler
type TokenStore struct {
	mu     sync.RWMutex
	issued map[string]struct{}
}

// NewTokenStore creates an empty token store
func NewTokenStore() *TokenStore {
	return &TokenStore{issued: make(map[string]struct{})}
}

// Issue mints and records a new token
func (s *TokenStore) Issue() string {
	token := uuid.New().String()

	s.mu.Lock()
	s.issued[token] = struct{}{}
	s.mu.Unlock()

	return token
}

// Valid reports whether token was issued by this store
func (s *TokenStore) Valid(token string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.issued[token]
	return ok
}

// Authorized reports whether r carries a bearer token issued by this store
func (s *TokenStore) Authorized(r *http.Request) bool {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	return ok && s.Valid(token)
}

// CredentialsRequest represents the JWT create request body
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse represents the JWT create response body
type TokenResponse struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// AuthHandler issues JWT-style tokens to the admin account
type AuthHandler struct {
	admin  config.Account
	tokens *TokenStore
	logger *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(admin config.Account, tokens *TokenStore, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		admin:  admin,
		tokens: tokens,
		logger: logger,
	}
}

// ServeHTTP handles the token creation request
func (h *AuthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var creds CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		sendErrorResponse(w, "Malformed request body", http.StatusBadRequest)
		return
	}

	if creds.Email != h.admin.Email || creds.Password != h.admin.Password {
		h.logger.Warn("rejected token request", "email", creds.Email)
		sendErrorResponse(w, "No active account found with the given credentials", http.StatusUnauthorized)
		return
	}

	h.logger.Info("issued admin token", "email", creds.Email)
	sendJSON(w, http.StatusOK, TokenResponse{
		Access:  h.tokens.Issue(),
		Refresh: uuid.New().String(),
	})
}
