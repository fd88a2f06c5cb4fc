package team

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"codexiv-backend/internal/shared/telemetry"
)

// Service contains business logic for team members.
type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// List returns members newest-first, failing soft to an empty slice.
func (s *Service) List(ctx context.Context, limit int) []Member {
	out, err := s.Repo.List(ctx, limit)
	if err != nil {
		telemetry.Error("team.list_failed", map[string]any{"error": err.Error()})
		return []Member{}
	}
	if out == nil {
		out = []Member{}
	}
	return out
}

func (s *Service) Get(ctx context.Context, id string) (Member, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, input Input) (Member, error) {
	if err := validate(input); err != nil {
		return Member{}, err
	}
	now := time.Now().UTC()
	member := Member{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Role:         input.Role,
		LongBio:      input.LongBio,
		Expertise:    input.Expertise,
		Experience:   input.Experience,
		LinkedIn:     input.LinkedIn,
		GitHub:       input.GitHub,
		Email:        input.Email,
		ProfileImage: input.ProfileImage,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(ctx, member); err != nil {
		return Member{}, err
	}
	return member, nil
}

func (s *Service) Update(ctx context.Context, id string, input Input) (Member, error) {
	if err := validate(input); err != nil {
		return Member{}, err
	}
	member, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return Member{}, err
	}
	member.Name = input.Name
	member.Role = input.Role
	member.LongBio = input.LongBio
	member.Expertise = input.Expertise
	member.Experience = input.Experience
	member.LinkedIn = input.LinkedIn
	member.GitHub = input.GitHub
	member.Email = input.Email
	member.ProfileImage = input.ProfileImage
	member.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(ctx, member); err != nil {
		return Member{}, err
	}
	return member, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func validate(input Input) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(input.Role) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(input.Email) == "" {
		return ErrInvalidInput
	}
	return nil
}
