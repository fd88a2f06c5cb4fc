package services

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) List(ctx context.Context, limit int) ([]Service, error) {
	if limit <= 0 {
		limit = 100
	}
	const query = `
SELECT id, name, description, created_at, updated_at
FROM services
ORDER BY created_at DESC
LIMIT $1`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Service
	for rows.Next() {
		var svc Service
		if err := rows.Scan(&svc.ID, &svc.Name, &svc.Description, &svc.CreatedAt, &svc.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, svc)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Service, error) {
	const query = `
SELECT id, name, description, created_at, updated_at
FROM services
WHERE id = $1
LIMIT 1`
	var svc Service
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&svc.ID, &svc.Name, &svc.Description, &svc.CreatedAt, &svc.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Service{}, ErrNotFound
		}
		return Service{}, err
	}
	return svc, nil
}

func (r *PGRepo) Create(ctx context.Context, svc Service) error {
	const query = `
INSERT INTO services (id, name, description, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.DB.ExecContext(ctx, query, svc.ID, svc.Name, svc.Description, svc.CreatedAt, svc.UpdatedAt)
	return err
}

func (r *PGRepo) Update(ctx context.Context, svc Service) error {
	const query = `
UPDATE services
SET name = $1, description = $2, updated_at = $3
WHERE id = $4`
	res, err := r.DB.ExecContext(ctx, query, svc.Name, svc.Description, svc.UpdatedAt, svc.ID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM services WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id)
	return err
}

var _ Repo = (*PGRepo)(nil)
