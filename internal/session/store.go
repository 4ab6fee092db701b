// Package session holds the bearer token and last-known user between
// invocations. It is a single-file key-value slot, not a data store:
// all financial entities stay backend-owned and are re-fetched per view.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"fintrack/internal/models"
)

type state struct {
	Token string          `json:"token,omitempty"`
	User  json.RawMessage `json:"user,omitempty"`
}

// Store persists the session state at a fixed path. Both slots are
// written and cleared together (logout, or any 401 from the backend).
type Store struct {
	path string

	mu    sync.Mutex
	state state
}

// Open loads the session file if one exists. A missing file is a valid
// logged-out session, not an error.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}
	if err := json.Unmarshal(raw, &s.state); err != nil {
		return nil, fmt.Errorf("corrupt session file %s: %w", path, err)
	}
	return s, nil
}

// Token returns the stored bearer token, if any.
func (s *Store) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Token, s.state.Token != ""
}

// User returns the last-known user echoed by the backend at login.
func (s *Store) User() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.state.User) == 0 {
		return models.User{}, false
	}
	var u models.User
	if err := json.Unmarshal(s.state.User, &u); err != nil {
		return models.User{}, false
	}
	return u, true
}

// SetSession stores the token and user JSON and persists them.
func (s *Store) SetSession(token string, user json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state{Token: token, User: user}
	return s.save()
}

// Clear wipes both slots and removes the session file.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state{}
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// Expired inspects the token's exp claim without verifying the
// signature; verification is the server's job, the token is otherwise
// opaque here. Tokens that cannot be parsed or carry no exp claim are
// treated as live and left for the backend to reject.
func (s *Store) Expired(now time.Time) bool {
	token, ok := s.Token()
	if !ok {
		return false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}

func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	raw, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}
