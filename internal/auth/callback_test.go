package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"codexiv-backend/internal/sessions"
	sharedauth "codexiv-backend/internal/shared/auth"
	"codexiv-backend/internal/users"
)

type fakeExchanger struct {
	identity Identity
	err      error
}

func (f *fakeExchanger) Exchange(ctx context.Context, code string) (Identity, error) {
	return f.identity, f.err
}

type fakeStateStore struct {
	valid map[string]bool
}

func (f *fakeStateStore) Consume(state string) bool {
	if f.valid[state] {
		delete(f.valid, state)
		return true
	}
	return false
}

type callbackFixture struct {
	processor   *CallbackProcessor
	userSvc     *users.Service
	sessionRepo *sessions.MemoryRepo
	sessionSvc  *sessions.Service
	exchanger   *fakeExchanger
}

func newCallbackFixture(t *testing.T) *callbackFixture {
	t.Helper()
	userSvc := users.NewService(users.NewMemoryRepo())
	sessionRepo := sessions.NewMemoryRepo()
	tokens := sharedauth.NewTokens("test-secret", time.Hour)
	sessionSvc := sessions.NewService(sessionRepo, tokens, time.Hour)
	exchanger := &fakeExchanger{
		identity: Identity{ID: "google:123", Email: "dev@example.com", Name: "Dev"},
	}
	return &callbackFixture{
		processor: &CallbackProcessor{
			Exchanger: exchanger,
			States:    &fakeStateStore{valid: map[string]bool{"state-1": true}},
			Users:     userSvc,
			Sessions:  sessionSvc,
		},
		userSvc:     userSvc,
		sessionRepo: sessionRepo,
		sessionSvc:  sessionSvc,
		exchanger:   exchanger,
	}
}

func TestCallbackProviderErrorParam(t *testing.T) {
	f := newCallbackFixture(t)
	result := f.processor.Process(context.Background(), CallbackParams{ErrorParam: "access_denied"})
	if result.State != StateError {
		t.Fatalf("expected error state, got %s", result.State)
	}
	if result.Message != "Authentication failed. Please try again." {
		t.Fatalf("unexpected message %q", result.Message)
	}
	if result.RedirectDelay != ErrorRedirectDelay {
		t.Fatalf("expected %v delay, got %v", ErrorRedirectDelay, result.RedirectDelay)
	}
}

func TestCallbackMissingStateOrCode(t *testing.T) {
	f := newCallbackFixture(t)
	cases := []CallbackParams{
		{State: "", Code: "code-1"},
		{State: "state-1", Code: ""},
	}
	for _, params := range cases {
		result := f.processor.Process(context.Background(), params)
		if result.State != StateError {
			t.Fatalf("expected error state for %+v, got %s", params, result.State)
		}
		if result.Message != "Invalid authentication response." {
			t.Fatalf("unexpected message %q", result.Message)
		}
	}
}

func TestCallbackUnknownState(t *testing.T) {
	f := newCallbackFixture(t)
	result := f.processor.Process(context.Background(), CallbackParams{State: "forged", Code: "code-1"})
	if result.State != StateError {
		t.Fatalf("expected error state, got %s", result.State)
	}
}

func TestCallbackStateIsSingleUse(t *testing.T) {
	f := newCallbackFixture(t)
	ctx := context.Background()
	seedUser(t, f.userSvc, "google:123", []string{users.AdminLabel})

	first := f.processor.Process(ctx, CallbackParams{State: "state-1", Code: "code-1"})
	if first.State != StateSuccess {
		t.Fatalf("expected success on first use, got %s (%s)", first.State, first.Message)
	}
	second := f.processor.Process(ctx, CallbackParams{State: "state-1", Code: "code-1"})
	if second.State != StateError {
		t.Fatalf("expected replayed state to fail, got %s", second.State)
	}
}

func TestCallbackExchangeFailure(t *testing.T) {
	f := newCallbackFixture(t)
	f.exchanger.err = errors.New("provider unreachable")
	result := f.processor.Process(context.Background(), CallbackParams{State: "state-1", Code: "code-1"})
	if result.State != StateError {
		t.Fatalf("expected error state, got %s", result.State)
	}
	if result.Message != "Authentication failed. Please try again." {
		t.Fatalf("unexpected message %q", result.Message)
	}
}

func TestCallbackAdminSuccess(t *testing.T) {
	f := newCallbackFixture(t)
	ctx := context.Background()
	seedUser(t, f.userSvc, "google:123", []string{users.AdminLabel})

	result := f.processor.Process(ctx, CallbackParams{State: "state-1", Code: "code-1"})
	if result.State != StateSuccess {
		t.Fatalf("expected success, got %s (%s)", result.State, result.Message)
	}
	if result.Token == "" {
		t.Fatal("expected a session token on success")
	}
	if result.RedirectDelay != SuccessRedirectDelay {
		t.Fatalf("expected %v delay, got %v", SuccessRedirectDelay, result.RedirectDelay)
	}

	// The issued token must resolve to a live session.
	if _, _, err := f.sessionSvc.Resolve(ctx, result.Token); err != nil {
		t.Fatalf("expected token to resolve, got %v", err)
	}
}

func TestCallbackNonAdminRevokesSession(t *testing.T) {
	f := newCallbackFixture(t)
	ctx := context.Background()
	// First sign-in: the user exists but has no labels.

	result := f.processor.Process(ctx, CallbackParams{State: "state-1", Code: "code-1"})
	if result.State != StateError {
		t.Fatalf("expected error state, got %s", result.State)
	}
	if result.Message != "Access denied. Admin privileges required." {
		t.Fatalf("unexpected message %q", result.Message)
	}
	if result.Token != "" {
		t.Fatal("expected no token for a denied user")
	}
	if result.RedirectDelay != ErrorRedirectDelay {
		t.Fatalf("expected %v delay, got %v", ErrorRedirectDelay, result.RedirectDelay)
	}

	// The session created during the handshake must not survive.
	left, err := f.sessionRepo.CountByUser(ctx, "google:123")
	if err != nil {
		t.Fatalf("count sessions: %v", err)
	}
	if left != 0 {
		t.Fatalf("expected 0 live sessions after denial, got %d", left)
	}

	// The user record itself is kept, so an operator can grant the label.
	user, err := f.userSvc.GetByID(ctx, "google:123")
	if err != nil {
		t.Fatalf("expected user to persist, got %v", err)
	}
	if user.Email != "dev@example.com" {
		t.Fatalf("unexpected user %+v", user)
	}
}

func TestCallbackUpsertPreservesLabels(t *testing.T) {
	f := newCallbackFixture(t)
	ctx := context.Background()
	seedUser(t, f.userSvc, "google:123", []string{users.AdminLabel})

	// A later sign-in must not wipe the label set.
	result := f.processor.Process(ctx, CallbackParams{State: "state-1", Code: "code-1"})
	if result.State != StateSuccess {
		t.Fatalf("expected success, got %s (%s)", result.State, result.Message)
	}
	user, err := f.userSvc.GetByID(ctx, "google:123")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if !user.HasLabel(users.AdminLabel) {
		t.Fatal("expected the admin label to survive re-auth")
	}
}
