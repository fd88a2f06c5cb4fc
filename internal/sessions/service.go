package sessions

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	sharedauth "codexiv-backend/internal/shared/auth"
)

// Service issues, resolves and revokes sessions. A session is live only
// while its server-side record exists and has not expired.
type Service struct {
	Repo   Repo
	Tokens *sharedauth.Tokens
	TTL    time.Duration
}

func NewService(repo Repo, tokens *sharedauth.Tokens, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Service{Repo: repo, Tokens: tokens, TTL: ttl}
}

// Issue creates a session record and returns it with its signed token.
func (s *Service) Issue(ctx context.Context, userID, email, name string) (Session, string, error) {
	if userID == "" {
		return Session{}, "", errors.New("user id required")
	}
	now := time.Now().UTC()
	session := Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.TTL),
	}
	if err := s.Repo.Create(ctx, session); err != nil {
		return Session{}, "", err
	}
	token, err := s.Tokens.Sign(userID, session.ID, email, name)
	if err != nil {
		// Do not leave an orphaned record behind an unsignable token.
		_ = s.Repo.Delete(ctx, session.ID)
		return Session{}, "", err
	}
	return session, token, nil
}

// Resolve verifies a token and confirms its session record is still live.
func (s *Service) Resolve(ctx context.Context, token string) (Session, sharedauth.SessionClaims, error) {
	claims, err := s.Tokens.Verify(token)
	if err != nil {
		return Session{}, sharedauth.SessionClaims{}, err
	}
	session, err := s.Repo.GetByID(ctx, claims.SessionID)
	if err != nil {
		return Session{}, sharedauth.SessionClaims{}, err
	}
	if session.UserID != claims.Subject {
		return Session{}, sharedauth.SessionClaims{}, ErrNotFound
	}
	if session.Expired(time.Now().UTC()) {
		_ = s.Repo.Delete(ctx, session.ID)
		return Session{}, sharedauth.SessionClaims{}, ErrNotFound
	}
	return session, claims, nil
}

// Revoke deletes a session record, invalidating its token immediately.
func (s *Service) Revoke(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return errors.New("session id required")
	}
	return s.Repo.Delete(ctx, sessionID)
}
