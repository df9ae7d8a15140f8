package kv

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/pos_inventory_app/internal/apperrors"
	portsrepo "github.com/SscSPs/pos_inventory_app/internal/core/ports/repositories"
)

// MemorySettingsStore keeps settings for the lifetime of the process.
// Used when no Redis address is configured or Redis is unreachable at startup.
type MemorySettingsStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemorySettingsStore creates an empty store.
func NewMemorySettingsStore() *MemorySettingsStore {
	return &MemorySettingsStore{values: make(map[string]string)}
}

func (s *MemorySettingsStore) GetSetting(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	if !ok {
		return "", fmt.Errorf("%w: setting %s", apperrors.ErrNotFound, key)
	}
	return val, nil
}

func (s *MemorySettingsStore) SetSetting(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

var _ portsrepo.SettingsStoreFacade = (*MemorySettingsStore)(nil)
