package projects

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateEncodesListsAsJSON(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	project := Project{
		ID:              "project-1",
		Title:           "Site",
		LongDescription: "A site",
		Category:        "web",
		Technologies:    []string{"go", "postgres"},
		Features:        []string{"fast"},
		MainImage:       "project/abc_site.png",
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	mock.ExpectExec("INSERT INTO projects").
		WithArgs(
			project.ID,
			project.Title,
			project.LongDescription,
			project.Category,
			[]byte(`["go","postgres"]`),
			[]byte(`["fast"]`),
			project.MainImage,
			nil, // live_url empty -> NULL
			project.CreatedAt,
			project.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), project); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDDecodesRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "title", "long_description", "category", "technologies",
		"features", "main_image", "live_url", "created_at", "updated_at",
	}).AddRow(
		"project-1", "Site", "A site", "web",
		[]byte(`["go"]`), []byte(`[]`), nil, "https://example.com", now, now,
	)
	mock.ExpectQuery("SELECT id, title, long_description").
		WithArgs("project-1").
		WillReturnRows(rows)

	project, err := repo.GetByID(context.Background(), "project-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(project.Technologies) != 1 || project.Technologies[0] != "go" {
		t.Fatalf("unexpected technologies %v", project.Technologies)
	}
	if project.Features == nil || len(project.Features) != 0 {
		t.Fatalf("expected empty features slice, got %v", project.Features)
	}
	if project.MainImage != "" {
		t.Fatalf("expected empty main image for NULL, got %q", project.MainImage)
	}
	if project.LiveURL != "https://example.com" {
		t.Fatalf("unexpected live url %q", project.LiveURL)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT id, title, long_description").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoUpdateMissingRowIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectExec("UPDATE projects").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Update(context.Background(), Project{ID: "missing", Title: "t"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
