package mem

import (
	"context"
	"fmt"
	"sync"
)

// InMemoryQuotaStore is a process-local quota counter store. It satisfies the
// quota store interface in internal/services and backs the guard in tests and
// in deployments without a database-backed store.
type InMemoryQuotaStore struct {
	mu   sync.RWMutex
	data map[string]int
}

func NewInMemoryQuotaStore() *InMemoryQuotaStore {
	return &InMemoryQuotaStore{data: make(map[string]int)}
}

func quotaKey(accountID, featureKey, localDate string) string {
	return fmt.Sprintf("%s:%s:%s", accountID, featureKey, localDate)
}

func (s *InMemoryQuotaStore) GetCount(ctx context.Context, accountID, featureKey, localDate string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[quotaKey(accountID, featureKey, localDate)], nil
}

func (s *InMemoryQuotaStore) SetCount(ctx context.Context, accountID, featureKey, localDate string, count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[quotaKey(accountID, featureKey, localDate)] = count
	return nil
}
