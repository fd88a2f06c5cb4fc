package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Upsert(ctx context.Context, user User) error {
	const query = `
INSERT INTO users (id, email, name, picture_url, labels, created_at, updated_at)
VALUES ($1, $2, $3, $4, '[]'::jsonb, now(), now())
ON CONFLICT (id) DO UPDATE SET
  email = EXCLUDED.email,
  name = EXCLUDED.name,
  picture_url = EXCLUDED.picture_url,
  updated_at = now()`
	_, err := r.DB.ExecContext(ctx, query,
		user.ID,
		user.Email,
		nullableString(user.Name),
		nullableString(user.PictureURL),
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, userID string) (User, error) {
	const query = `
SELECT id, email, name, picture_url, labels, created_at, updated_at
FROM users
WHERE id = $1
LIMIT 1`
	var user User
	var name sql.NullString
	var pictureURL sql.NullString
	var labelsRaw []byte
	var updatedAt sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&user.ID,
		&user.Email,
		&name,
		&pictureURL,
		&labelsRaw,
		&user.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	if name.Valid {
		user.Name = name.String
	}
	if pictureURL.Valid {
		user.PictureURL = pictureURL.String
	}
	if len(labelsRaw) > 0 {
		if err := json.Unmarshal(labelsRaw, &user.Labels); err != nil {
			return User{}, err
		}
	}
	if updatedAt.Valid {
		user.UpdatedAt = updatedAt.Time
	} else {
		user.UpdatedAt = time.Now().UTC()
	}
	return user, nil
}

func (r *PGRepo) SetLabels(ctx context.Context, userID string, labels []string) error {
	if labels == nil {
		labels = []string{}
	}
	raw, err := json.Marshal(labels)
	if err != nil {
		return err
	}
	const query = `
UPDATE users SET labels = $1, updated_at = now() WHERE id = $2`
	res, err := r.DB.ExecContext(ctx, query, raw, userID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

var _ Repo = (*PGRepo)(nil)
