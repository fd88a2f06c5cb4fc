package sessions

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, session Session) error {
	const query = `
INSERT INTO sessions (id, user_id, created_at, expires_at)
VALUES ($1, $2, $3, $4)`
	_, err := r.DB.ExecContext(ctx, query,
		session.ID,
		session.UserID,
		session.CreatedAt,
		session.ExpiresAt,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, sessionID string) (Session, error) {
	const query = `
SELECT id, user_id, created_at, expires_at
FROM sessions
WHERE id = $1
LIMIT 1`
	var session Session
	err := r.DB.QueryRowContext(ctx, query, sessionID).Scan(
		&session.ID,
		&session.UserID,
		&session.CreatedAt,
		&session.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Session{}, ErrNotFound
		}
		return Session{}, err
	}
	return session, nil
}

func (r *PGRepo) Delete(ctx context.Context, sessionID string) error {
	const query = `DELETE FROM sessions WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, sessionID)
	return err
}

func (r *PGRepo) DeleteByUser(ctx context.Context, userID string) error {
	const query = `DELETE FROM sessions WHERE user_id = $1`
	_, err := r.DB.ExecContext(ctx, query, userID)
	return err
}

func (r *PGRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	const query = `SELECT COUNT(*) FROM sessions WHERE user_id = $1`
	var n int
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(&n)
	return n, err
}

var _ Repo = (*PGRepo)(nil)
