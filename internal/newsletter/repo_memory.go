package newsletter

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo keyed by email.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Subscriber
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Subscriber)}
}

func (r *MemoryRepo) Upsert(ctx context.Context, sub Subscriber) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.data[sub.Email]; ok {
		existing.Status = sub.Status
		r.data[sub.Email] = existing
		return nil
	}
	r.data[sub.Email] = sub
	return nil
}

func (r *MemoryRepo) List(ctx context.Context, limit int) ([]Subscriber, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]Subscriber, 0, len(r.data))
	for _, sub := range r.data {
		out = append(out, sub)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].SubscribedAt.After(out[j].SubscribedAt)
	})
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryRepo) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.data)), nil
}

var _ Repo = (*MemoryRepo)(nil)
