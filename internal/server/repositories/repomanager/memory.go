package repomanager

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/fitkeeper/internal/server/repositories/users"
)

// MemoryRepositoryManager serves a single in-process user store.
// Transactions are serialized but not rolled back on error.
type MemoryRepositoryManager struct {
	txMu  sync.Mutex
	users *users.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{users: users.NewMemoryRepository()}
}

func (m *MemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *MemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *MemoryRepositoryManager) WithTx(ctx context.Context, fn func(ctx context.Context, repo users.Repository) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()
	return fn(ctx, m.users)
}
