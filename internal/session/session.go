package session

import (
	"context"
	"fmt"
	"sync"

	"examadmin/internal/model"
)

// Session is the process-wide login state. It is initialized from the Store at
// startup, changed only by Login and Logout, and read by the API client on
// every call.
type Session struct {
	mu    sync.RWMutex
	store Store
	token string
	user  *model.User
}

// New restores a session from store.
func New(ctx context.Context, store Store) (*Session, error) {
	token, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load session token: %w", err)
	}
	return &Session{store: store, token: token}, nil
}

// Token returns the bearer token, or "" when signed out.
func (s *Session) Token() string {
	if s == nil {
		return ""
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the signed-in user when known. A session restored from storage
// has a token but no user until the next login.
func (s *Session) User() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Authenticated reports whether a token is present.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// Login persists token and records user.
func (s *Session) Login(ctx context.Context, token string, user *model.User) error {
	if err := s.store.Save(ctx, token); err != nil {
		return fmt.Errorf("persist session token: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.user = user
	return nil
}

// Logout forgets the token locally and in the store.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session token: %w", err)
	}
	return nil
}
