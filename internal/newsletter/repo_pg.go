package newsletter

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Upsert(ctx context.Context, sub Subscriber) error {
	const query = `
INSERT INTO newsletter_subscribers (id, email, status, subscribed_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (email) DO UPDATE SET status = EXCLUDED.status`
	_, err := r.DB.ExecContext(ctx, query, sub.ID, sub.Email, sub.Status, sub.SubscribedAt)
	return err
}

func (r *PGRepo) List(ctx context.Context, limit int) ([]Subscriber, error) {
	if limit <= 0 {
		limit = 100
	}
	const query = `
SELECT id, email, status, subscribed_at
FROM newsletter_subscribers
ORDER BY subscribed_at DESC
LIMIT $1`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Subscriber
	for rows.Next() {
		var sub Subscriber
		if err := rows.Scan(&sub.ID, &sub.Email, &sub.Status, &sub.SubscribedAt); err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

func (r *PGRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM newsletter_subscribers`).Scan(&n)
	return n, err
}

var _ Repo = (*PGRepo)(nil)
