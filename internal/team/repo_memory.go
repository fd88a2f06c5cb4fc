package team

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Member
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Member)}
}

func (r *MemoryRepo) List(ctx context.Context, limit int) ([]Member, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]Member, 0, len(r.data))
	for _, member := range r.data {
		out = append(out, member)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Member, error) {
	if err := ctx.Err(); err != nil {
		return Member{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	member, ok := r.data[id]
	if !ok {
		return Member{}, ErrNotFound
	}
	return member, nil
}

func (r *MemoryRepo) Create(ctx context.Context, member Member) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[member.ID] = member
	return nil
}

func (r *MemoryRepo) Update(ctx context.Context, member Member) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[member.ID]; !ok {
		return ErrNotFound
	}
	r.data[member.ID] = member
	return nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, id)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
