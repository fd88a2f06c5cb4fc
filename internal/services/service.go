package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"codexiv-backend/internal/shared/telemetry"
)

// Manager contains business logic for the services catalogue. The domain
// entity is itself called Service, hence the different name here.
type Manager struct {
	Repo Repo
}

func NewManager(repo Repo) *Manager {
	return &Manager{Repo: repo}
}

// List returns services newest-first, failing soft to an empty slice.
func (m *Manager) List(ctx context.Context, limit int) []Service {
	out, err := m.Repo.List(ctx, limit)
	if err != nil {
		telemetry.Error("services.list_failed", map[string]any{"error": err.Error()})
		return []Service{}
	}
	if out == nil {
		out = []Service{}
	}
	return out
}

func (m *Manager) Get(ctx context.Context, id string) (Service, error) {
	return m.Repo.GetByID(ctx, id)
}

func (m *Manager) Create(ctx context.Context, input Input) (Service, error) {
	if err := validate(input); err != nil {
		return Service{}, err
	}
	now := time.Now().UTC()
	svc := Service{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := m.Repo.Create(ctx, svc); err != nil {
		return Service{}, err
	}
	return svc, nil
}

func (m *Manager) Update(ctx context.Context, id string, input Input) (Service, error) {
	if err := validate(input); err != nil {
		return Service{}, err
	}
	svc, err := m.Repo.GetByID(ctx, id)
	if err != nil {
		return Service{}, err
	}
	svc.Name = input.Name
	svc.Description = input.Description
	svc.UpdatedAt = time.Now().UTC()
	if err := m.Repo.Update(ctx, svc); err != nil {
		return Service{}, err
	}
	return svc, nil
}

func (m *Manager) Delete(ctx context.Context, id string) error {
	return m.Repo.Delete(ctx, id)
}

func validate(input Input) error {
	if strings.TrimSpace(input.Name) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(input.Description) == "" {
		return ErrInvalidInput
	}
	return nil
}
