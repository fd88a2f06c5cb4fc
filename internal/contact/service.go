package contact

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"codexiv-backend/internal/shared/telemetry"
)

// Service contains business logic for contact submissions.
type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// List returns submissions newest-first, failing soft to an empty slice.
func (s *Service) List(ctx context.Context, limit int) []Submission {
	out, err := s.Repo.List(ctx, limit)
	if err != nil {
		telemetry.Error("contact.list_failed", map[string]any{"error": err.Error()})
		return []Submission{}
	}
	if out == nil {
		out = []Submission{}
	}
	return out
}

func (s *Service) Get(ctx context.Context, id string) (Submission, error) {
	return s.Repo.GetByID(ctx, id)
}

// Submit records a new contact-form message. Every submission starts in
// StatusNew.
func (s *Service) Submit(ctx context.Context, input Input) (Submission, error) {
	if err := validate(input); err != nil {
		return Submission{}, err
	}
	now := time.Now().UTC()
	sub := Submission{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Email:       input.Email,
		Company:     input.Company,
		Subject:     input.Subject,
		Message:     input.Message,
		Status:      StatusNew,
		SubmittedAt: now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(ctx, sub); err != nil {
		return Submission{}, err
	}
	return sub, nil
}

// UpdateStatus moves a submission through the handling workflow. Unknown
// statuses are rejected before touching the store.
func (s *Service) UpdateStatus(ctx context.Context, id string, status Status) (Submission, error) {
	if !status.Valid() {
		return Submission{}, ErrInvalidStatus
	}
	now := time.Now().UTC()
	if err := s.Repo.UpdateStatus(ctx, id, status, now); err != nil {
		return Submission{}, err
	}
	return s.Repo.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

func validate(input Input) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(input.Email) == "" || !strings.Contains(input.Email, "@") {
		return ErrInvalidInput
	}
	if strings.TrimSpace(input.Subject) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(input.Message) == "" {
		return ErrInvalidInput
	}
	return nil
}
