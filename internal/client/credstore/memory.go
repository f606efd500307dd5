package credstore

import (
	"context"
	"sync"

	"github.com/bethub/admincli/internal/client/models"
)

// MemoryStore is an in-memory Store for tests and ephemeral sessions.
type MemoryStore struct {
	mu      sync.RWMutex
	token   string
	profile *models.Profile
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) SetSession(_ context.Context, token string, profile *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	if profile != nil {
		copied := *profile
		s.profile = &copied
	} else {
		s.profile = nil
	}
	return nil
}

func (s *MemoryStore) Token(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, nil
}

func (s *MemoryStore) Profile(_ context.Context) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil, nil
	}
	copied := *s.profile
	return &copied, nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.profile = nil
	return nil
}

func (s *MemoryStore) Close() error { return nil }
