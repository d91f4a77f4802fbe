// internal/adapters/out/memory/user_repository_mem.go
package memory

import (
	"context"
	"strings"
	"sync"

	userdom "storefront/internal/domain/user"
)

// UserRepositoryMem implements user.Repository in memory.
// Email uniqueness is enforced on Create (normalized email as key).
type UserRepositoryMem struct {
	mu      sync.RWMutex
	byID    map[string]userdom.User
	byEmail map[string]string // email -> id
}

func NewUserRepositoryMem() *UserRepositoryMem {
	return &UserRepositoryMem{
		byID:    make(map[string]userdom.User),
		byEmail: make(map[string]string),
	}
}

func (r *UserRepositoryMem) GetByID(ctx context.Context, id string) (userdom.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[strings.TrimSpace(id)]
	if !ok {
		return userdom.User{}, userdom.ErrNotFound
	}
	return u, nil
}

func (r *UserRepositoryMem) GetByEmail(ctx context.Context, email string) (userdom.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[userdom.NormalizeEmail(email)]
	if !ok {
		return userdom.User{}, userdom.ErrNotFound
	}
	return r.byID[id], nil
}

func (r *UserRepositoryMem) Create(ctx context.Context, u userdom.User) (userdom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[u.Email]; taken {
		return userdom.User{}, userdom.ErrEmailTaken
	}
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u.ID
	return u, nil
}
