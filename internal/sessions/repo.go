package sessions

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "session not found" }

// Repo defines persistence operations for sessions.
type Repo interface {
	Create(ctx context.Context, session Session) error
	GetByID(ctx context.Context, sessionID string) (Session, error)
	Delete(ctx context.Context, sessionID string) error
	DeleteByUser(ctx context.Context, userID string) error
	CountByUser(ctx context.Context, userID string) (int, error)
}
