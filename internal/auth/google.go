package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"codexiv-backend/internal/sessions"
	"codexiv-backend/internal/shared/server/respond"
	"codexiv-backend/internal/users"
)

// GoogleService handles the Google OAuth flow for admin sign-in.
type GoogleService struct {
	oauthConfig *oauth2.Config
	uiRedirect  string
	stateTTL    time.Duration
	states      *stateStore
	processor   *CallbackProcessor
}

// NewGoogleService builds a GoogleService wired to the callback processor.
func NewGoogleService(clientID, clientSecret, redirectURL, uiRedirect string, userSvc *users.Service, sessionSvc *sessions.Service) *GoogleService {
	s := &GoogleService{
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
		uiRedirect: uiRedirect,
		stateTTL:   5 * time.Minute,
		states:     newStateStore(),
	}
	s.processor = &CallbackProcessor{
		Exchanger: s,
		States:    s.states,
		Users:     userSvc,
		Sessions:  sessionSvc,
	}
	return s
}

// RegisterRoutes attaches the OAuth routes.
func (s *GoogleService) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/google/start", s.start)
	rg.GET("/auth/google/callback", s.callback)
}

func (s *GoogleService) start(c *gin.Context) {
	if s.oauthConfig.ClientID == "" || s.oauthConfig.ClientSecret == "" || s.oauthConfig.RedirectURL == "" {
		respond.Error(c, http.StatusInternalServerError, "auth_not_configured", "Google auth not configured", nil)
		return
	}

	state := uuid.NewString()
	s.states.put(state, time.Now().Add(s.stateTTL))

	url := s.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
	c.Redirect(http.StatusFound, url)
}

// callback is the side-effecting shell around the callback processor: it
// parses the redirect, runs the transition logic, and sends the operator
// back to the admin UI carrying the outcome.
func (s *GoogleService) callback(c *gin.Context) {
	result := s.processor.Process(c.Request.Context(), CallbackParams{
		ErrorParam: c.Query("error"),
		State:      c.Query("state"),
		Code:       c.Query("code"),
	})

	redirectURL, err := s.resultRedirect(result)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to redirect", nil)
		return
	}
	c.Redirect(http.StatusFound, redirectURL)
}

func (s *GoogleService) resultRedirect(result CallbackResult) (string, error) {
	if s.uiRedirect == "" {
		return "", errors.New("redirect url required")
	}
	u, err := url.Parse(s.uiRedirect)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("status", string(result.State))
	q.Set("message", result.Message)
	q.Set("redirect_after", strconv.Itoa(int(result.RedirectDelay/time.Second)))
	if result.Token != "" {
		q.Set("token", result.Token)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

type googleUserInfo struct {
	Sub     string `json:"sub"`
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Exchange trades the authorization code for the Google profile.
func (s *GoogleService) Exchange(ctx context.Context, code string) (Identity, error) {
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return Identity{}, fmt.Errorf("exchange code: %w", err)
	}

	client := s.oauthConfig.Client(ctx, token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return Identity{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Identity{}, fmt.Errorf("userinfo status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return Identity{}, err
	}

	// Some responses use "id" instead of "sub".
	if info.Sub == "" {
		info.Sub = info.ID
	}
	if info.Sub == "" {
		return Identity{}, errors.New("userinfo missing subject")
	}

	return Identity{
		ID:      "google:" + info.Sub,
		Email:   info.Email,
		Name:    info.Name,
		Picture: info.Picture,
	}, nil
}

var _ Exchanger = (*GoogleService)(nil)

type stateStore struct {
	items map[string]time.Time
	mu    sync.Mutex
}

func newStateStore() *stateStore {
	return &stateStore{items: make(map[string]time.Time)}
}

func (s *stateStore) put(state string, exp time.Time) {
	s.mu.Lock()
	s.items[state] = exp
	s.mu.Unlock()
}

// Consume invalidates the state; it reports true only for a known,
// unexpired state.
func (s *stateStore) Consume(state string) bool {
	s.mu.Lock()
	exp, ok := s.items[state]
	if ok {
		delete(s.items, state)
	}
	s.mu.Unlock()
	if !ok {
		return false
	}
	return !time.Now().After(exp)
}
