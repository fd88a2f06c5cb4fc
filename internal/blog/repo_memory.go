package blog

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Post
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Post)}
}

func (r *MemoryRepo) List(ctx context.Context, limit int) ([]Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]Post, 0, len(r.data))
	for _, post := range r.data {
		out = append(out, post)
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

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Post, error) {
	if err := ctx.Err(); err != nil {
		return Post{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	post, ok := r.data[id]
	if !ok {
		return Post{}, ErrNotFound
	}
	return post, nil
}

func (r *MemoryRepo) Create(ctx context.Context, post Post) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[post.ID] = post
	return nil
}

func (r *MemoryRepo) Update(ctx context.Context, post Post) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[post.ID]; !ok {
		return ErrNotFound
	}
	r.data[post.ID] = post
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
