package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/nemid-codegen/internal/domain"
)

// IdentityStore is a process-local identity set, used in tests and for
// IDENTITY_BACKEND=memory.
type IdentityStore struct {
	mu   sync.RWMutex
	byID map[string]domain.Identity
}

func NewIdentityStore(seed ...domain.Identity) *IdentityStore {
	s := &IdentityStore{byID: make(map[string]domain.Identity, len(seed))}
	for _, i := range seed {
		s.byID[i.NemID] = i
	}
	return s
}

func (s *IdentityStore) Exists(_ context.Context, nemID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.byID[nemID]
	return ok, nil
}

func (s *IdentityStore) Put(_ context.Context, i *domain.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[i.NemID]; ok {
		return fmt.Errorf("identity %s exists: %w", i.NemID, domain.ErrConflict)
	}
	s.byID[i.NemID] = *i
	return nil
}
