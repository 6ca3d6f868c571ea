package service

import (
	"context"
	"fmt"
	"time"

	"examadmin/internal/apiclient"
	"examadmin/internal/auth"
	"examadmin/internal/errors"
	"examadmin/internal/model"
)

// Session is the login state the auth service reads and changes.
type Session interface {
	Token() string
	User() *model.User
	Login(ctx context.Context, token string, user *model.User) error
	Logout(ctx context.Context) error
}

// SessionInfo describes who the dashboard is acting as.
type SessionInfo struct {
	Authenticated bool            `json:"authenticated"`
	User          *model.User     `json:"user,omitempty"`
	Token         *auth.TokenInfo `json:"token,omitempty"`
}

// AuthService handles admin sign-in against the exam backend.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*model.User, error)
	Logout(ctx context.Context) error
	Info() SessionInfo
}

type authService struct {
	api     Backend
	session Session
	now     func() time.Time
}

// NewAuthService creates a new authentication service.
func NewAuthService(api Backend, session Session) AuthService {
	return &authService{
		api:     api,
		session: session,
		now:     time.Now,
	}
}

type loginResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// Login exchanges credentials for a backend token. Only ADMIN accounts are
// accepted; for anyone else nothing is persisted.
func (s *authService) Login(ctx context.Context, email, password string) (*model.User, error) {
	raw, err := s.api.Post(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}

	resp, err := apiclient.UnwrapObject[loginResponse](raw, "data")
	if err != nil {
		return nil, fmt.Errorf("decode login response: %w", err)
	}
	if resp.Token == "" || resp.User == nil {
		return nil, fmt.Errorf("decode login response: token or user missing")
	}
	if resp.User.Role != model.RoleAdmin {
		return nil, errors.ErrNotAdmin
	}

	if err := s.session.Login(ctx, resp.Token, resp.User); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Logout forgets the stored token.
func (s *authService) Logout(ctx context.Context) error {
	return s.session.Logout(ctx)
}

// Info reports the session state. Opaque tokens are reported as
// authenticated without token details.
func (s *authService) Info() SessionInfo {
	token := s.session.Token()
	info := SessionInfo{Authenticated: token != "", User: s.session.User()}
	if token == "" {
		return info
	}
	if details, err := auth.Inspect(token, s.now()); err == nil {
		info.Token = details
	}
	return info
}
