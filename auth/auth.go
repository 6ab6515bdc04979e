// Package auth implements login, signup, logout and session inspection
// against the StaffSync auth endpoints. Successful authentication persists
// the full session (both tokens plus the user profile) as a single unit.
package auth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/staffsync/go-staffsync/client"
	"github.com/staffsync/go-staffsync/session"
)

// Credentials is a login request.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupInput is a signup request. New accounts always get the Employee role;
// HR Administrators are provisioned out of band.
type SignupInput struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	Phone      string `json:"phone,omitempty"`
	Department string `json:"department"`
}

// Grant is the backend's authentication response: the signed-in user plus a
// fresh token pair.
type Grant struct {
	User         session.UserProfile `json:"user"`
	AccessToken  string              `json:"access_token"`
	RefreshToken string              `json:"refresh_token"`
	TokenType    string              `json:"token_type"`
	ExpiresIn    int                 `json:"expires_in"`
}

// Service performs authentication flows and manages the stored session.
type Service struct {
	client *client.Client
	store  session.Store
	logger zerolog.Logger
}

// NewService creates an auth Service. The store should be the same one the
// client reads tokens from, or logins will not take effect.
func NewService(apiClient *client.Client, store session.Store, logger zerolog.Logger) *Service {
	return &Service{
		client: apiClient,
		store:  store,
		logger: logger,
	}
}

// Login authenticates with email and password and persists the resulting
// session. The tokens and profile are saved together: a later crash can never
// leave a token on disk without the profile it belongs to.
func (s *Service) Login(ctx context.Context, credentials Credentials) (*Grant, error) {
	var grant Grant
	err := s.client.DoDecoded(ctx, client.Request{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Body:   credentials,
	}, &grant)
	if err != nil {
		return nil, fmt.Errorf("[Service.Login] %w", err)
	}

	if err := s.persistGrant(&grant); err != nil {
		return nil, fmt.Errorf("[Service.Login] %w", err)
	}

	s.logger.Info().Str("email", grant.User.Email).Str("role", grant.User.Role).Msg("logged in")
	return &grant, nil
}

// Signup registers a new employee account and persists the resulting session,
// exactly as Login does.
func (s *Service) Signup(ctx context.Context, input SignupInput) (*Grant, error) {
	var grant Grant
	err := s.client.DoDecoded(ctx, client.Request{
		Method: http.MethodPost,
		Path:   "/auth/signup",
		Body:   input,
	}, &grant)
	if err != nil {
		return nil, fmt.Errorf("[Service.Signup] %w", err)
	}

	if err := s.persistGrant(&grant); err != nil {
		return nil, fmt.Errorf("[Service.Signup] %w", err)
	}

	s.logger.Info().Str("email", grant.User.Email).Msg("account created")
	return &grant, nil
}

// Logout tells the backend to revoke the session, then destroys the local
// one. The local clear happens even when the revoke call fails: from the
// user's point of view logout must always succeed.
func (s *Service) Logout(ctx context.Context) error {
	if _, err := s.client.Do(ctx, client.Request{
		Method: http.MethodPost,
		Path:   "/auth/logout",
	}); err != nil {
		s.logger.Warn().Err(err).Msg("backend logout failed, clearing local session anyway")
	}

	if err := s.store.Clear(); err != nil {
		return fmt.Errorf("[Service.Logout] clearing session: %w", err)
	}
	return nil
}

// Me fetches the authoritative profile of the signed-in user from the backend
// and refreshes the stored copy.
func (s *Service) Me(ctx context.Context) (*session.UserProfile, error) {
	var profile session.UserProfile
	err := s.client.DoDecoded(ctx, client.Request{
		Method: http.MethodGet,
		Path:   "/auth/me",
	}, &profile)
	if err != nil {
		return nil, fmt.Errorf("[Service.Me] %w", err)
	}

	sess, err := s.store.Load()
	if err == nil && sess.Authenticated() {
		sess.User = &profile
		if err := s.store.Save(sess); err != nil {
			s.logger.Warn().Err(err).Msg("persisting refreshed profile failed")
		}
	}
	return &profile, nil
}

// Current returns the locally stored session without a network round trip.
func (s *Service) Current() (session.Session, error) {
	sess, err := s.store.Load()
	if err != nil {
		return session.Session{}, fmt.Errorf("[Service.Current] %w", err)
	}
	return sess, nil
}

func (s *Service) persistGrant(grant *Grant) error {
	if grant.AccessToken == "" || grant.RefreshToken == "" {
		return fmt.Errorf("authentication response is missing tokens")
	}
	user := grant.User
	if err := s.store.Save(session.Session{
		AccessToken:  grant.AccessToken,
		RefreshToken: grant.RefreshToken,
		User:         &user,
	}); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}
	return nil
}
