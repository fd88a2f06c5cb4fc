package projects

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"codexiv-backend/internal/shared/telemetry"
)

// Service contains business logic for projects.
type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// List returns projects newest-first. It fails soft: a repo error yields an
// empty slice so listing pages degrade to "no content" instead of crashing.
func (s *Service) List(ctx context.Context, limit int) []Project {
	out, err := s.Repo.List(ctx, limit)
	if err != nil {
		telemetry.Error("projects.list_failed", map[string]any{"error": err.Error()})
		return []Project{}
	}
	if out == nil {
		out = []Project{}
	}
	return out
}

// Get returns a single project; ErrNotFound is surfaced to the caller.
func (s *Service) Get(ctx context.Context, id string) (Project, error) {
	return s.Repo.GetByID(ctx, id)
}

// Create stamps creation and update timestamps and persists the project.
func (s *Service) Create(ctx context.Context, input Input) (Project, error) {
	if err := validate(input); err != nil {
		return Project{}, err
	}
	now := time.Now().UTC()
	project := Project{
		ID:              uuid.NewString(),
		Title:           input.Title,
		LongDescription: input.LongDescription,
		Category:        input.Category,
		Technologies:    input.Technologies,
		Features:        input.Features,
		MainImage:       input.MainImage,
		LiveURL:         input.LiveURL,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.Repo.Create(ctx, project); err != nil {
		return Project{}, err
	}
	return project, nil
}

// Update replaces the mutable fields and refreshes the update timestamp.
func (s *Service) Update(ctx context.Context, id string, input Input) (Project, error) {
	if err := validate(input); err != nil {
		return Project{}, err
	}
	project, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Project{}, err
	}
	project.Title = input.Title
	project.LongDescription = input.LongDescription
	project.Category = input.Category
	project.Technologies = input.Technologies
	project.Features = input.Features
	project.MainImage = input.MainImage
	project.LiveURL = input.LiveURL
	project.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, project); err != nil {
		return Project{}, err
	}
	return project, nil
}

// Delete removes a project.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func validate(input Input) error {
	if strings.TrimSpace(input.Title) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(input.LongDescription) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(input.Category) == "" {
		return ErrInvalidInput
	}
	return nil
}
