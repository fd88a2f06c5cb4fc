package contact

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) List(ctx context.Context, limit int) ([]Submission, error) {
	if limit <= 0 {
		limit = 100
	}
	const query = `
SELECT id, name, email, company, subject, message, status, submitted_at, updated_at
FROM contact_submissions
ORDER BY submitted_at DESC
LIMIT $1`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Submission, error) {
	const query = `
SELECT id, name, email, company, subject, message, status, submitted_at, updated_at
FROM contact_submissions
WHERE id = $1
LIMIT 1`
	sub, err := scanSubmission(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Submission{}, ErrNotFound
		}
		return Submission{}, err
	}
	return sub, nil
}

func (r *PGRepo) Create(ctx context.Context, sub Submission) error {
	const query = `
INSERT INTO contact_submissions (id, name, email, company, subject, message, status, submitted_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.DB.ExecContext(ctx, query,
		sub.ID,
		sub.Name,
		sub.Email,
		nullableString(sub.Company),
		sub.Subject,
		sub.Message,
		string(sub.Status),
		sub.SubmittedAt,
		sub.UpdatedAt,
	)
	return err
}

func (r *PGRepo) UpdateStatus(ctx context.Context, id string, status Status, updatedAt time.Time) error {
	const query = `
UPDATE contact_submissions
SET status = $1, updated_at = $2
WHERE id = $3`
	res, err := r.DB.ExecContext(ctx, query, string(status), updatedAt, id)
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
	const query = `DELETE FROM contact_submissions WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row rowScanner) (Submission, error) {
	var sub Submission
	var company sql.NullString
	var status string
	if err := row.Scan(
		&sub.ID,
		&sub.Name,
		&sub.Email,
		&company,
		&sub.Subject,
		&sub.Message,
		&status,
		&sub.SubmittedAt,
		&sub.UpdatedAt,
	); err != nil {
		return Submission{}, err
	}
	if company.Valid {
		sub.Company = company.String
	}
	sub.Status = Status(status)
	return sub, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

var _ Repo = (*PGRepo)(nil)
