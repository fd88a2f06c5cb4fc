package projects

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("project not found")
	ErrInvalidInput = errors.New("invalid project input")
)

// Repo defines persistence operations for projects.
type Repo interface {
	List(ctx context.Context, limit int) ([]Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	Create(ctx context.Context, project Project) error
	Update(ctx context.Context, project Project) error
	Delete(ctx context.Context, id string) error
}
