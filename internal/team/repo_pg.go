package team

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

func (r *PGRepo) List(ctx context.Context, limit int) ([]Member, error) {
	if limit <= 0 {
		limit = 100
	}
	const query = `
SELECT id, name, role, long_bio, expertise, experience, linkedin, github, email, profile_image, created_at, updated_at
FROM team_members
ORDER BY created_at DESC
LIMIT $1`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Member
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, member)
	}
	return out, rows.Err()
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (Member, error) {
	const query = `
SELECT id, name, role, long_bio, expertise, experience, linkedin, github, email, profile_image, created_at, updated_at
FROM team_members
WHERE id = $1
LIMIT 1`
	member, err := scanMember(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Member{}, ErrNotFound
		}
		return Member{}, err
	}
	return member, nil
}

func (r *PGRepo) Create(ctx context.Context, member Member) error {
	const query = `
INSERT INTO team_members (id, name, role, long_bio, expertise, experience, linkedin, github, email, profile_image, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	expertise, err := encodeExpertise(member.Expertise)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		member.ID,
		member.Name,
		member.Role,
		member.LongBio,
		expertise,
		member.Experience,
		nullableString(member.LinkedIn),
		nullableString(member.GitHub),
		member.Email,
		nullableString(member.ProfileImage),
		member.CreatedAt,
		member.UpdatedAt,
	)
	return err
}

func (r *PGRepo) Update(ctx context.Context, member Member) error {
	const query = `
UPDATE team_members
SET name = $1, role = $2, long_bio = $3, expertise = $4, experience = $5, linkedin = $6, github = $7, email = $8, profile_image = $9, updated_at = $10
WHERE id = $11`
	expertise, err := encodeExpertise(member.Expertise)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx, query,
		member.Name,
		member.Role,
		member.LongBio,
		expertise,
		member.Experience,
		nullableString(member.LinkedIn),
		nullableString(member.GitHub),
		member.Email,
		nullableString(member.ProfileImage),
		member.UpdatedAt,
		member.ID,
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
	const query = `DELETE FROM team_members WHERE id = $1`
	_, err := r.DB.ExecContext(ctx, query, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (Member, error) {
	var member Member
	var expertiseRaw []byte
	var linkedin, github, profileImage sql.NullString
	if err := row.Scan(
		&member.ID,
		&member.Name,
		&member.Role,
		&member.LongBio,
		&expertiseRaw,
		&member.Experience,
		&linkedin,
		&github,
		&member.Email,
		&profileImage,
		&member.CreatedAt,
		&member.UpdatedAt,
	); err != nil {
		return Member{}, err
	}
	member.Expertise = []string{}
	if len(expertiseRaw) > 0 {
		if err := json.Unmarshal(expertiseRaw, &member.Expertise); err != nil {
			return Member{}, err
		}
	}
	if linkedin.Valid {
		member.LinkedIn = linkedin.String
	}
	if github.Valid {
		member.GitHub = github.String
	}
	if profileImage.Valid {
		member.ProfileImage = profileImage.String
	}
	return member, nil
}

func encodeExpertise(list []string) ([]byte, error) {
	if list == nil {
		list = []string{}
	}
	return json.Marshal(list)
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

var _ Repo = (*PGRepo)(nil)
