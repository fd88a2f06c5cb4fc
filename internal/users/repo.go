package users

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "user not found" }

// Repo defines persistence operations for user accounts.
type Repo interface {
	// Upsert inserts or refreshes the profile fields of a user. Role labels
	// are owned by operators and are never touched by Upsert.
	Upsert(ctx context.Context, user User) error
	GetByID(ctx context.Context, userID string) (User, error)
	// SetLabels replaces the role-label set. Used by the operator CLI.
	SetLabels(ctx context.Context, userID string, labels []string) error
}
