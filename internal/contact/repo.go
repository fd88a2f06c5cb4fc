package contact

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound indicates the submission does not exist.
	ErrNotFound = errors.New("contact submission not found")
	// ErrInvalidInput indicates a write with missing required fields.
	ErrInvalidInput = errors.New("invalid contact submission input")
	// ErrInvalidStatus indicates a status outside the known set.
	ErrInvalidStatus = errors.New("invalid contact submission status")
)

// Repo is the persistence interface for contact submissions.
type Repo interface {
	List(ctx context.Context, limit int) ([]Submission, error)
	GetByID(ctx context.Context, id string) (Submission, error)
	Create(ctx context.Context, sub Submission) error
	UpdateStatus(ctx context.Context, id string, status Status, updatedAt time.Time) error
	Delete(ctx context.Context, id string) error
}
