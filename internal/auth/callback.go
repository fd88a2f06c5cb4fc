package auth

import (
	"context"
	"time"

	"codexiv-backend/internal/sessions"
	"codexiv-backend/internal/shared/telemetry"
	"codexiv-backend/internal/users"
)

// CallbackState is the terminal state of one OAuth callback.
type CallbackState string

const (
	StateSuccess CallbackState = "success"
	StateError   CallbackState = "error"
)

const (
	// Delays the UI waits before navigating away from the callback screen.
	SuccessRedirectDelay = 2 * time.Second
	ErrorRedirectDelay   = 3 * time.Second

	msgAuthFailed   = "Authentication failed. Please try again."
	msgInvalidReply = "Invalid authentication response."
	msgAccessDenied = "Access denied. Admin privileges required."
)

// CallbackParams are the query parameters of the provider redirect.
type CallbackParams struct {
	ErrorParam string
	State      string
	Code       string
}

// CallbackResult is what the callback decided: a terminal state, a message
// for the operator, the session token on success, and how long the UI
// should display the result before redirecting.
type CallbackResult struct {
	State         CallbackState
	Message       string
	Token         string
	RedirectDelay time.Duration
}

// Identity is the profile materialized from the provider after the code
// exchange.
type Identity struct {
	ID      string
	Email   string
	Name    string
	Picture string
}

// Exchanger completes the provider side of the OAuth handshake.
type Exchanger interface {
	Exchange(ctx context.Context, code string) (Identity, error)
}

// StateStore tracks issued anti-CSRF states; Consume is single-use.
type StateStore interface {
	Consume(state string) bool
}

// CallbackProcessor runs the callback transition logic. It performs no
// redirects itself; the HTTP shell turns the result into navigation.
type CallbackProcessor struct {
	Exchanger Exchanger
	States    StateStore
	Users     *users.Service
	Sessions  *sessions.Service
}

func errorResult(message string) CallbackResult {
	return CallbackResult{State: StateError, Message: message, RedirectDelay: ErrorRedirectDelay}
}

// Process drives the callback to a terminal state. A session is only left
// live when the authenticated user holds the admin label; a session created
// for a non-admin user is revoked before reporting the error.
func (p *CallbackProcessor) Process(ctx context.Context, params CallbackParams) CallbackResult {
	if params.ErrorParam != "" {
		return errorResult(msgAuthFailed)
	}
	if params.State == "" || params.Code == "" {
		return errorResult(msgInvalidReply)
	}
	if !p.States.Consume(params.State) {
		return errorResult(msgInvalidReply)
	}

	identity, err := p.Exchanger.Exchange(ctx, params.Code)
	if err != nil || identity.ID == "" {
		telemetry.Error("auth.exchange_failed", map[string]any{"error": errString(err)})
		return errorResult(msgAuthFailed)
	}

	if err := p.Users.UpsertFromAuth(ctx, users.User{
		ID:         identity.ID,
		Email:      identity.Email,
		Name:       identity.Name,
		PictureURL: identity.Picture,
	}); err != nil {
		telemetry.Error("auth.upsert_failed", map[string]any{"error": err.Error()})
		return errorResult(msgAuthFailed)
	}

	session, token, err := p.Sessions.Issue(ctx, identity.ID, identity.Email, identity.Name)
	if err != nil {
		telemetry.Error("auth.session_failed", map[string]any{"error": err.Error()})
		return errorResult(msgAuthFailed)
	}

	user, err := p.Users.GetByID(ctx, identity.ID)
	if err != nil {
		_ = p.Sessions.Revoke(ctx, session.ID)
		telemetry.Error("auth.user_fetch_failed", map[string]any{"error": err.Error()})
		return errorResult(msgAuthFailed)
	}

	if !user.HasLabel(users.AdminLabel) {
		// Lack of privilege actively revokes the session rather than
		// leaving an authenticated-but-unauthorized session alive.
		_ = p.Sessions.Revoke(ctx, session.ID)
		telemetry.Info("auth.access_denied", map[string]any{"user_id": user.ID})
		return errorResult(msgAccessDenied)
	}

	return CallbackResult{
		State:         StateSuccess,
		Message:       "Authentication successful.",
		Token:         token,
		RedirectDelay: SuccessRedirectDelay,
	}
}

func errString(err error) string {
	if err == nil {
		return "empty identity"
	}
	return err.Error()
}
