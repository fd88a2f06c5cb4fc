package newsletter

import (
	"context"
	"errors"
)

// ErrInvalidEmail indicates the submitted address is not usable.
var ErrInvalidEmail = errors.New("invalid email address")

// Repo is the persistence interface for newsletter subscribers.
type Repo interface {
	// Upsert stores the subscriber, keeping the earliest signup when the
	// email is already present.
	Upsert(ctx context.Context, sub Subscriber) error
	List(ctx context.Context, limit int) ([]Subscriber, error)
	Count(ctx context.Context) (int64, error)
}
