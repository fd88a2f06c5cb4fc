package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for tokens that fail verification.
var ErrInvalidToken = errors.New("invalid token")

// SessionClaims is the identity carried by a session token. Role labels are
// deliberately not embedded: authorization is re-read from the user record
// on every check so out-of-band grants take effect without re-login.
type SessionClaims struct {
	SessionID string `json:"sid"`
	Email     string `json:"email,omitempty"`
	Name      string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Tokens signs and verifies session tokens with HS256.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

// NewTokens builds a Tokens helper. An empty secret falls back to a dev
// value; production deployments must set JWT_SECRET.
func NewTokens(secret string, ttl time.Duration) *Tokens {
	s := strings.TrimSpace(secret)
	if s == "" {
		s = "dev-secret"
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Tokens{secret: []byte(s), ttl: ttl}
}

// Sign issues a token bound to a user and a server-side session record.
func (t *Tokens) Sign(userID, sessionID, email, name string) (string, error) {
	if userID == "" || sessionID == "" {
		return "", errors.New("user id and session id are required")
	}
	now := time.Now().UTC()
	claims := SessionClaims{
		SessionID: sessionID,
		Email:     email,
		Name:      name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify parses and validates a token, returning its claims.
func (t *Tokens) Verify(token string) (SessionClaims, error) {
	var claims SessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return t.secret, nil
	})
	if err != nil || !parsed.Valid {
		return SessionClaims{}, ErrInvalidToken
	}
	if claims.Subject == "" || claims.SessionID == "" {
		return SessionClaims{}, ErrInvalidToken
	}
	return claims, nil
}
