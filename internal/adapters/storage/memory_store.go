package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/uamonitor/account-monitor/internal/domain"
	"github.com/uamonitor/account-monitor/internal/ports"
)

// MemoryStore is an in-memory AccountStore for tests and local runs
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[int64]domain.Account
	meta     map[int64]map[string]string
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts: make(map[int64]domain.Account),
		meta:     make(map[int64]map[string]string),
	}
}

// Put inserts or replaces an account record
func (s *MemoryStore) Put(account domain.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.ID] = account
}

// Get returns the account record, or ports.ErrNotFound
func (s *MemoryStore) Get(ctx context.Context, id int64) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return &account, nil
}

// SetMeta writes one metadata value
func (s *MemoryStore) SetMeta(ctx context.Context, id int64, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.meta[id] == nil {
		s.meta[id] = make(map[string]string)
	}
	s.meta[id][key] = value
	return nil
}

// GetMeta reads one metadata value
func (s *MemoryStore) GetMeta(ctx context.Context, id int64, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.meta[id][key]
	return value, ok, nil
}

// DeleteMeta removes one metadata key
func (s *MemoryStore) DeleteMeta(ctx context.Context, id int64, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.meta[id], key)
	return nil
}

// ListIDsAfter returns up to limit identifiers greater than afterID, ascending
func (s *MemoryStore) ListIDsAfter(ctx context.Context, afterID int64, limit int) ([]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]int64, 0, len(s.accounts))
	for id := range s.accounts {
		if id > afterID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if limit > 0 && len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

// Delete removes the account and its metadata
func (s *MemoryStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.accounts, id)
	delete(s.meta, id)
	return nil
}

// Close is a no-op for the in-memory store
func (s *MemoryStore) Close() error {
	return nil
}
