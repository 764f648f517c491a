// Package fakeapi is an in-memory stand-in for the marketplace backend
// endpoints the suite verifies against.
package fakeapi

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rentzila/e2e/internal/config"
)

// Server wires the fake backend handlers together
type Server struct {
	Repo   BackcallRepository
	Tokens *TokenStore

	auth     *AuthHandler
	backcall *BackcallHandler
}

// New creates a fake backend that accepts admin as its only account
func New(admin config.Account, repo BackcallRepository, logger *slog.Logger) *Server {
	tokens := NewTokenStore()
	return &Server{
		Repo:     repo,
		Tokens:   tokens,
		auth:     NewAuthHandler(admin, tokens, logger),
		backcall: NewBackcallHandler(repo, tokens, logger),
	}
}

// Register mounts the fake endpoints on mux
func (s *Server) Register(mux *http.ServeMux) {
	mux.Handle("/api/auth/jwt/create/", s.auth)
	mux.Handle("/api/backcall/", s.backcall)
}

// Handler returns a mux serving only the fake endpoints
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.Register(mux)
	return mux
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

// sendErrorResponse sends a JSON error response
func sendErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	sendJSON(w, statusCode, ErrorResponse{
		Error:  http.StatusText(statusCode),
		Detail: message,
	})
}

func sendJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}
