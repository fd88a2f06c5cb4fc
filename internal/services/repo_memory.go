package services

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Service
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Service)}
}

func (r *MemoryRepo) List(ctx context.Context, limit int) ([]Service, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]Service, 0, len(r.data))
	for _, svc := range r.data {
		out = append(out, svc)
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

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Service, error) {
	if err := ctx.Err(); err != nil {
		return Service{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	svc, ok := r.data[id]
	if !ok {
		return Service{}, ErrNotFound
	}
	return svc, nil
}

func (r *MemoryRepo) Create(ctx context.Context, svc Service) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[svc.ID] = svc
	return nil
}

func (r *MemoryRepo) Update(ctx context.Context, svc Service) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[svc.ID]; !ok {
		return ErrNotFound
	}
	r.data[svc.ID] = svc
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
