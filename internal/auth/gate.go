package auth

import (
	"context"
	"sync"
	"time"

	"codexiv-backend/internal/sessions"
	"codexiv-backend/internal/users"
)

const defaultUserCacheTTL = 30 * time.Second

// Access is the gate's answer for a request: who the caller is and whether
// they hold administrative privilege. A nil User means no live session.
type Access struct {
	User    *users.User `json:"user"`
	IsAdmin bool        `json:"isAdmin"`
}

// Gate answers admin-access questions for bearer tokens. Every failure mode
// degrades to an unauthenticated Access; the gate never returns an error.
type Gate struct {
	Sessions *sessions.Service
	Users    *users.Service

	cacheTTL time.Duration
	mu       sync.Mutex
	cache    map[string]cachedUser
}

type cachedUser struct {
	user    users.User
	fetched time.Time
}

// NewGate constructs a Gate with a short-lived user cache.
func NewGate(sessionSvc *sessions.Service, userSvc *users.Service) *Gate {
	return &Gate{
		Sessions: sessionSvc,
		Users:    userSvc,
		cacheTTL: defaultUserCacheTTL,
		cache:    make(map[string]cachedUser),
	}
}

// CheckAdminAccess resolves the session behind the token and inspects the
// user's role labels. No session, an expired session, or a failed user
// fetch all report {nil, false}.
func (g *Gate) CheckAdminAccess(ctx context.Context, token string) Access {
	return g.check(ctx, token, false)
}

// RefreshUserAndCheckAdmin is CheckAdminAccess with the user cache
// bypassed, so a label granted out-of-band is visible without re-login.
func (g *Gate) RefreshUserAndCheckAdmin(ctx context.Context, token string) Access {
	return g.check(ctx, token, true)
}

func (g *Gate) check(ctx context.Context, token string, bypassCache bool) Access {
	if token == "" {
		return Access{}
	}
	session, _, err := g.Sessions.Resolve(ctx, token)
	if err != nil {
		return Access{}
	}

	user, ok := g.lookupUser(ctx, session.UserID, bypassCache)
	if !ok {
		return Access{}
	}
	return Access{User: &user, IsAdmin: user.HasLabel(users.AdminLabel)}
}

func (g *Gate) lookupUser(ctx context.Context, userID string, bypass bool) (users.User, bool) {
	now := time.Now()
	if !bypass {
		g.mu.Lock()
		entry, hit := g.cache[userID]
		g.mu.Unlock()
		if hit && now.Sub(entry.fetched) < g.cacheTTL {
			return entry.user, true
		}
	}

	user, err := g.Users.GetByID(ctx, userID)
	if err != nil {
		return users.User{}, false
	}

	g.mu.Lock()
	g.cache[userID] = cachedUser{user: user, fetched: now}
	g.mu.Unlock()
	return user, true
}
