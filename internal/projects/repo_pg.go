package projects

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) List(ctx context.Context, limit int) ([]Project, error) {
	if limit <= 0 {
		limit = 100
	}
	const query = `
SELECT id, title, long_description, category, technologies, features, main_image, live_url, created_at, updated_at
FROM projects
ORDER BY created_at DESC
LIMIT $1`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, project)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Project, error) {
	const query = `
SELECT id, title, long_description, category, technologies, features, main_image, live_url, created_at, updated_at
FROM projects
WHERE id = $1
LIMIT 1`
	project, err := scanProject(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Project{}, ErrNotFound
		}
		return Project{}, err
	}
	return project, nil
}

func (r *PGRepo) Create(ctx context.Context, project Project) error {
	const query = `
INSERT INTO projects (id, title, long_description, category, technologies, features, main_image, live_url, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	technologies, err := encodeList(project.Technologies)
	if err != nil {
		return err
	}
	features, err := encodeList(project.Features)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		project.ID,
		project.Title,
		project.LongDescription,
		project.Category,
		technologies,
		features,
		nullableString(project.MainImage),
		nullableString(project.LiveURL),
		project.CreatedAt,
		project.UpdatedAt,
	)
	return err
}

func (r *PGRepo) Update(ctx context.Context, project Project) error {
	const query = `
UPDATE projects
SET title = $1, long_description = $2, category = $3, technologies = $4, features = $5, main_image = $6, live_url = $7, updated_at = $8
WHERE id = $9`
	technologies, err := encodeList(project.Technologies)
	if err != nil {
		return err
	}
	features, err := encodeList(project.Features)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx, query,
		project.Title,
		project.LongDescription,
		project.Category,
		technologies,
		features,
		nullableString(project.MainImage),
		nullableString(project.LiveURL),
		project.UpdatedAt,
		project.ID,
	)
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
	const query = `DELETE FROM projects WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (Project, error) {
	var project Project
	var technologiesRaw, featuresRaw []byte
	var mainImage, liveURL sql.NullString
	if err := row.Scan(
		&project.ID,
		&project.Title,
		&project.LongDescription,
		&project.Category,
		&technologiesRaw,
		&featuresRaw,
		&mainImage,
		&liveURL,
		&project.CreatedAt,
		&project.UpdatedAt,
	); err != nil {
		return Project{}, err
	}
	if err := decodeList(technologiesRaw, &project.Technologies); err != nil {
		return Project{}, err
	}
	if err := decodeList(featuresRaw, &project.Features); err != nil {
		return Project{}, err
	}
	if mainImage.Valid {
		project.MainImage = mainImage.String
	}
	if liveURL.Valid {
		project.LiveURL = liveURL.String
	}
	return project, nil
}

func encodeList(list []string) ([]byte, error) {
	if list == nil {
		list = []string{}
	}
	return json.Marshal(list)
}

func decodeList(raw []byte, dest *[]string) error {
	if len(raw) == 0 {
		*dest = []string{}
		return nil
	}
	return json.Unmarshal(raw, dest)
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

var _ Repo = (*PGRepo)(nil)
