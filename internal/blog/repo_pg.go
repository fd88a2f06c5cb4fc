package blog

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

func (r *PGRepo) List(ctx context.Context, limit int) ([]Post, error) {
	if limit <= 0 {
		limit = 100
	}
	const query = `
SELECT id, title, excerpt, content, category, tags, image, created_at, updated_at
FROM blog_posts
ORDER BY created_at DESC
LIMIT $1`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, post)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Post, error) {
	const query = `
SELECT id, title, excerpt, content, category, tags, image, created_at, updated_at
FROM blog_posts
WHERE id = $1
LIMIT 1`
	post, err := scanPost(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Post{}, ErrNotFound
		}
		return Post{}, err
	}
	return post, nil
}

func (r *PGRepo) Create(ctx context.Context, post Post) error {
	const query = `
INSERT INTO blog_posts (id, title, excerpt, content, category, tags, image, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	tags, err := encodeTags(post.Tags)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		post.ID,
		post.Title,
		post.Excerpt,
		post.Content,
		post.Category,
		tags,
		nullableString(post.Image),
		post.CreatedAt,
		post.UpdatedAt,
	)
	return err
}

func (r *PGRepo) Update(ctx context.Context, post Post) error {
	const query = `
UPDATE blog_posts
SET title = $1, excerpt = $2, content = $3, category = $4, tags = $5, image = $6, updated_at = $7
WHERE id = $8`
	tags, err := encodeTags(post.Tags)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx, query,
		post.Title,
		post.Excerpt,
		post.Content,
		post.Category,
		tags,
		nullableString(post.Image),
		post.UpdatedAt,
		post.ID,
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
	const query = `DELETE FROM blog_posts WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (Post, error) {
	var post Post
	var tagsRaw []byte
	var image sql.NullString
	if err := row.Scan(
		&post.ID,
		&post.Title,
		&post.Excerpt,
		&post.Content,
		&post.Category,
		&tagsRaw,
		&image,
		&post.CreatedAt,
		&post.UpdatedAt,
	); err != nil {
		return Post{}, err
	}
	post.Tags = []string{}
	if len(tagsRaw) > 0 {
		if err := json.Unmarshal(tagsRaw, &post.Tags); err != nil {
			return Post{}, err
		}
	}
	if image.Valid {
		post.Image = image.String
	}
	return post, nil
}

func encodeTags(tags []string) ([]byte, error) {
	if tags == nil {
		tags = []string{}
	}
	return json.Marshal(tags)
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

var _ Repo = (*PGRepo)(nil)
