package blog

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"codexiv-backend/internal/shared/telemetry"
)

// Service contains business logic for blog posts.
type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// List returns posts newest-first, failing soft to an empty slice.
func (s *Service) List(ctx context.Context, limit int) []Post {
	out, err := s.Repo.List(ctx, limit)
	if err != nil {
		telemetry.Error("blog.list_failed", map[string]any{"error": err.Error()})
		return []Post{}
	}
	if out == nil {
		out = []Post{}
	}
	return out
}

func (s *Service) Get(ctx context.Context, id string) (Post, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, input Input) (Post, error) {
	if err := validate(input); err != nil {
		return Post{}, err
	}
	now := time.Now().UTC()
	post := Post{
		ID:        uuid.NewString(),
		Title:     input.Title,
		Excerpt:   input.Excerpt,
		Content:   input.Content,
		Category:  input.Category,
		Tags:      input.Tags,
		Image:     input.Image,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, post); err != nil {
		return Post{}, err
	}
	return post, nil
}

func (s *Service) Update(ctx context.Context, id string, input Input) (Post, error) {
	if err := validate(input); err != nil {
		return Post{}, err
	}
	post, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Post{}, err
	}
	post.Title = input.Title
	post.Excerpt = input.Excerpt
	post.Content = input.Content
	post.Category = input.Category
	post.Tags = input.Tags
	post.Image = input.Image
	post.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, post); err != nil {
		return Post{}, err
	}
	return post, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func validate(input Input) error {
	if strings.TrimSpace(input.Title) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(input.Content) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(input.Category) == "" {
		return ErrInvalidInput
	}
	return nil
}
