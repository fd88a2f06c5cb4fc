package blog

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indicates the post does not exist.
	ErrNotFound = errors.New("blog post not found")
	// ErrInvalidInput indicates a write with missing required fields.
	ErrInvalidInput = errors.New("invalid blog post input")
)

// Repo is the persistence interface for blog posts.
type Repo interface {
	List(ctx context.Context, limit int) ([]Post, error)
	GetByID(ctx context.Context, id string) (Post, error)
	Create(ctx context.Context, post Post) error
	Update(ctx context.Context, post Post) error
	Delete(ctx context.Context, id string) error
}
