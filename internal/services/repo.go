package services

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indicates the service does not exist.
	ErrNotFound = errors.New("service not found")
	// ErrInvalidInput indicates a write with missing required fields.
	ErrInvalidInput = errors.New("invalid service input")
)

// Repo is the persistence interface for services.
type Repo interface {
	List(ctx context.Context, limit int) ([]Service, error)
	GetByID(ctx context.Context, id string) (Service, error)
	Create(ctx context.Context, svc Service) error
	Update(ctx context.Context, svc Service) error
	Delete(ctx context.Context, id string) error
}
