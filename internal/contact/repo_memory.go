package contact

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Submission
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Submission)}
}

func (r *MemoryRepo) List(ctx context.Context, limit int) ([]Submission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]Submission, 0, len(r.data))
	for _, sub := range r.data {
		out = append(out, sub)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].SubmittedAt.After(out[j].SubmittedAt)
	})
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Submission, error) {
	if err := ctx.Err(); err != nil {
		return Submission{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	sub, ok := r.data[id]
	if !ok {
		return Submission{}, ErrNotFound
	}
	return sub, nil
}

func (r *MemoryRepo) Create(ctx context.Context, sub Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[sub.ID] = sub
	return nil
}

func (r *MemoryRepo) UpdateStatus(ctx context.Context, id string, status Status, updatedAt time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	sub, ok := r.data[id]
	if !ok {
		return ErrNotFound
	}
	sub.Status = status
	sub.UpdatedAt = updatedAt
	r.data[id] = sub
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
