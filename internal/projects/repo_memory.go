package projects

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Project
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Project)}
}

func (r *MemoryRepo) List(ctx context.Context, limit int) ([]Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]Project, 0, len(r.data))
	for _, project := range r.data {
		out = append(out, project)
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

func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Project, error) {
	if err := ctx.Err(); err != nil {
		return Project{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	project, ok := r.data[id]
	if !ok {
		return Project{}, ErrNotFound
	}
	return project, nil
}

func (r *MemoryRepo) Create(ctx context.Context, project Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[project.ID] = project
	return nil
}

func (r *MemoryRepo) Update(ctx context.Context, project Project) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[project.ID]; !ok {
		return ErrNotFound
	}
	r.data[project.ID] = project
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
