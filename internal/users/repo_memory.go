package users

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]User
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]User)}
}

func (r *MemoryRepo) Upsert(ctx context.Context, user User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	if existing, ok := r.data[user.ID]; ok {
		existing.Email = user.Email
		existing.Name = user.Name
		existing.PictureURL = user.PictureURL
		existing.UpdatedAt = now
		r.data[user.ID] = existing
		return nil
	}
	user.Labels = []string{}
	user.CreatedAt = now
	user.UpdatedAt = now
	r.data[user.ID] = user
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, userID string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.data[userID]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

func (r *MemoryRepo) SetLabels(ctx context.Context, userID string, labels []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.data[userID]
	if !ok {
		return ErrNotFound
	}
	if labels == nil {
		labels = []string{}
	}
	user.Labels = append([]string(nil), labels...)
	user.UpdatedAt = time.Now().UTC()
	r.data[userID] = user
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
