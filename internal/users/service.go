package users

import (
	"context"
	"errors"
	"strings"
)

// Service contains account logic on top of the repo.
type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// UpsertFromAuth persists the user identity coming out of the OAuth
// handshake so role labels have a stable record to attach to.
func (s *Service) UpsertFromAuth(ctx context.Context, user User) error {
	if s == nil || s.Repo == nil {
		return errors.New("users service not configured")
	}
	if strings.TrimSpace(user.ID) == "" || strings.TrimSpace(user.Email) == "" {
		return errors.New("user id and email are required")
	}
	return s.Repo.Upsert(ctx, user)
}

func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return User{}, errors.New("user id is required")
	}
	return s.Repo.GetByID(ctx, userID)
}

// GrantLabel adds a role label to a user if not already present.
func (s *Service) GrantLabel(ctx context.Context, userID, label string) error {
	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.HasLabel(label) {
		return nil
	}
	return s.Repo.SetLabels(ctx, userID, append(user.Labels, label))
}
