package fakeapi

import (
	"sync"

	"github.com/rentzila/e2e/internal/models"
)

// BackcallRepository persists backcalls
type BackcallRepository interface {
	CreateBackcall(backcall *models.Backcall) error
	ListBackcalls() ([]models.Backcall, error)
}

// MemoryBackcallRepository keeps backcalls in insertion order in memory
type MemoryBackcallRepository struct {
	mu        sync.RWMutex
	backcalls []models.Backcall
}

// NewMemoryBackcallRepository creates an empty repository
func NewMemoryBackcallRepository() *MemoryBackcallRepository {
	return &MemoryBackcallRepository{}
}

// CreateBackcall stores a copy of backcall
func (r *MemoryBackcallRepository) CreateBackcall(backcall *models.Backcall) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.backcalls = append(r.backcalls, *backcall)
	return nil
}

// ListBackcalls returns a snapshot of every stored backcall
func (r *MemoryBackcallRepository) ListBackcalls() ([]models.Backcall, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Backcall, len(r.backcalls))
	copy(out, r.backcalls)
	return out, nil
}
