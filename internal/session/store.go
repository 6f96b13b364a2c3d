package session

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"salonhub/internal/api"
	"salonhub/internal/domain"
)

const (
	keyToken = "auth_token"
	keyUser  = "auth_user"
)

var (
	// ErrAccessDenied is returned when credentials are valid but the
	// account role has no dashboard access. The message is fixed so the
	// UI never leaks why a customer login looked "almost right".
	ErrAccessDenied = errors.New("access denied: this dashboard is for salon owners and administrators")

	ErrNotAuthenticated = errors.New("not authenticated")
)

// AuthAPI is the slice of the platform client the store needs.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*api.AuthPayload, error)
	Me(ctx context.Context) (*domain.User, error)
	Logout(ctx context.Context) error
}

// Store owns the current authenticated identity. It is the only writer
// of the durable token/user keys; everyone else receives it injected.
type Store struct {
	api     AuthAPI
	storage Storage

	mu      sync.RWMutex
	current *domain.Session
}

// NewStore restores any persisted session from storage. A missing or
// unreadable record starts the store unauthenticated; it never fails.
func NewStore(authAPI AuthAPI, storage Storage) *Store {
	s := &Store{api: authAPI, storage: storage}
	s.restore()
	return s
}

func (s *Store) restore() {
	token, ok := s.storage.Get(keyToken)
	if !ok || token == "" {
		return
	}
	rawUser, ok := s.storage.Get(keyUser)
	if !ok {
		s.clearStorage()
		return
	}
	var user domain.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		log.Printf("session: discarding unreadable stored user: %v", err)
		s.clearStorage()
		return
	}
	s.current = &domain.Session{User: user, Token: token}
}

// Login exchanges credentials for a session. Accounts outside the
// salon_owner/admin roles are rejected even when the backend accepted
// the credentials; nothing is persisted in that case.
func (s *Store) Login(ctx context.Context, email, password string) error {
	payload, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if !payload.User.Role.DashboardAccess() {
		return ErrAccessDenied
	}

	rawUser, err := json.Marshal(payload.User)
	if err != nil {
		return err
	}
	if err := s.storage.Set(keyToken, payload.Token); err != nil {
		return err
	}
	if err := s.storage.Set(keyUser, string(rawUser)); err != nil {
		return err
	}

	s.mu.Lock()
	s.current = &domain.Session{User: payload.User, Token: payload.Token}
	s.mu.Unlock()
	return nil
}

// Logout notifies the backend best-effort and unconditionally clears
// both durable keys and the in-memory session.
func (s *Store) Logout(ctx context.Context) {
	if s.Authenticated() {
		if err := s.api.Logout(ctx); err != nil {
			log.Printf("session: server logout failed: %v", err)
		}
	}
	s.clearStorage()
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

// RefreshUser re-fetches the profile. On failure the existing session is
// left untouched: stale-but-available beats signed-out.
func (s *Store) RefreshUser(ctx context.Context) error {
	if !s.Authenticated() {
		return ErrNotAuthenticated
	}
	user, err := s.api.Me(ctx)
	if err != nil {
		return err
	}
	rawUser, err := json.Marshal(user)
	if err != nil {
		return err
	}
	if err := s.storage.Set(keyUser, string(rawUser)); err != nil {
		return err
	}
	s.mu.Lock()
	if s.current != nil {
		s.current.User = *user
	}
	s.mu.Unlock()
	return nil
}

func (s *Store) Current() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	copied := *s.current
	return &copied
}

func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}

// Token implements api.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

func (s *Store) clearStorage() {
	if err := s.storage.Delete(keyToken); err != nil {
		log.Printf("session: clearing token failed: %v", err)
	}
	if err := s.storage.Delete(keyUser); err != nil {
		log.Printf("session: clearing user failed: %v", err)
	}
}
