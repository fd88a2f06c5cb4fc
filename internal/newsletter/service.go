package newsletter

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"codexiv-backend/internal/shared/telemetry"
)

// Service contains business logic for newsletter signups.
type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Subscribe records a signup. Subscribing twice with the same address is a
// no-op, so the endpoint is safe to retry.
func (s *Service) Subscribe(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return ErrInvalidEmail
	}
	return s.Repo.Upsert(ctx, Subscriber{
		ID:           uuid.NewString(),
		Email:        email,
		Status:       StatusActive,
		SubscribedAt: time.Now().UTC(),
	})
}

// List returns subscribers newest-first, failing soft to an empty slice.
func (s *Service) List(ctx context.Context, limit int) []Subscriber {
	out, err := s.Repo.List(ctx, limit)
	if err != nil {
		telemetry.Error("newsletter.list_failed", map[string]any{"error": err.Error()})
		return []Subscriber{}
	}
	if out == nil {
		out = []Subscriber{}
	}
	return out
}
