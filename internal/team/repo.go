package team

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indicates the member does not exist.
	ErrNotFound = errors.New("team member not found")
	// ErrInvalidInput indicates a write with missing required fields.
	ErrInvalidInput = errors.New("invalid team member input")
)

// Repo is the persistence interface for team members.
type Repo interface {
	List(ctx context.Context, limit int) ([]Member, error)
	GetByID(ctx context.Context, id string) (Member, error)
	Create(ctx context.Context, member Member) error
	Update(ctx context.Context, member Member) error
	Delete(ctx context.Context, id string) error
}
