package fakeapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rentzila/e2e/internal/models"
)

// BackcallRequest represents the consultation form submission
type BackcallRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// BackcallHandler lists backcalls for admins and accepts public submissions
type BackcallHandler struct {
	repo   BackcallRepository
	tokens *TokenStore
	logger *slog.Logger
}

// NewBackcallHandler creates a new backcall handler
func NewBackcallHandler(repo BackcallRepository, tokens *TokenStore, logger *slog.Logger) *BackcallHandler {
	return &BackcallHandler{
		repo:   repo,
		tokens: tokens,
		logger: logger,
	}
}

// ServeHTTP dispatches on method
func (h *BackcallHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *BackcallHandler) list(w http.ResponseWriter, r *http.Request) {
	if !h.tokens.Authorized(r) {
		sendErrorResponse(w, "Authentication credentials were not provided", http.StatusUnauthorized)
		return
	}

	backcalls, err := h.repo.ListBackcalls()
	if err != nil {
		h.logger.Error("failed to list backcalls", "error", err)
		sendErrorResponse(w, "Failed to list backcalls", http.StatusInternalServerError)
		return
	}

	sendJSON(w, http.StatusOK, backcalls)
}

func (h *BackcallHandler) create(w http.ResponseWriter, r *http.Request) {
	var req BackcallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendErrorResponse(w, "Malformed request body", http.StatusBadRequest)
		return
	}

	backcall, err := models.NewBackcall(req.Name, req.Phone)
	if errors.Is(err, models.ErrInvalidName) || errors.Is(err, models.ErrInvalidPhone) {
		sendErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		sendErrorResponse(w, "Failed to create backcall", http.StatusInternalServerError)
		return
	}

	if err := h.repo.CreateBackcall(backcall); err != nil {
		h.logger.Error("failed to store backcall", "error", err)
		sendErrorResponse(w, "Failed to create backcall", http.StatusInternalServerError)
		return
	}

	h.logger.Info("backcall created", "id", backcall.ID, "name", backcall.Name)
	sendJSON(w, http.StatusCreated, backcall)
}
