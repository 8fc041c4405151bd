package users

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/fitkeeper/internal/common"
	"github.com/dmitrijs2005/fitkeeper/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps users in process memory. It is used when no
// database DSN is configured and in tests.
type MemoryRepository struct {
	mu         sync.RWMutex
	byID       map[string]*models.User
	byName     map[string]string
	byProvider map[string]string
	now        func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:       make(map[string]*models.User),
		byName:     make(map[string]string),
		byProvider: make(map[string]string),
		now:        time.Now,
	}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byName[user.UserName]; ok {
		return nil, common.ErrorAlreadyExists
	}
	if user.ProviderID != nil {
		if _, ok := r.byProvider[*user.ProviderID]; ok {
			return nil, common.ErrorAlreadyExists
		}
	}

	now := r.now()
	user.ID = uuid.NewString()
	user.CreatedAt = now
	user.LastActiveAt = now

	stored := *user
	r.byID[user.ID] = &stored
	r.byName[user.UserName] = user.ID
	if user.ProviderID != nil {
		r.byProvider[*user.ProviderID] = user.ID
	}

	return user, nil
}

func (r *MemoryRepository) GetUserByLogin(ctx context.Context, userName string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[userName]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u := *r.byID[id]
	return &u, nil
}

func (r *MemoryRepository) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u := *stored
	return &u, nil
}

// GetUserByIDForUpdate is GetUserByID; the memory manager serializes
// transactions instead of locking rows.
func (r *MemoryRepository) GetUserByIDForUpdate(ctx context.Context, id string) (*models.User, error) {
	return r.GetUserByID(ctx, id)
}

func (r *MemoryRepository) Update(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[user.ID]
	if !ok {
		return nil, common.ErrorNotFound
	}

	if user.ProviderID != nil {
		if owner, ok := r.byProvider[*user.ProviderID]; ok && owner != user.ID {
			return nil, common.ErrorAlreadyExists
		}
	}
	if stored.ProviderID != nil {
		delete(r.byProvider, *stored.ProviderID)
	}
	if user.ProviderID != nil {
		r.byProvider[*user.ProviderID] = user.ID
	}

	// identity and creation time are immutable
	user.UserName = stored.UserName
	user.Role = stored.Role
	user.CreatedAt = stored.CreatedAt
	if now := r.now(); now.After(stored.LastActiveAt) {
		user.LastActiveAt = now
	} else {
		user.LastActiveAt = stored.LastActiveAt
	}

	updated := *user
	r.byID[user.ID] = &updated

	return user, nil
}
