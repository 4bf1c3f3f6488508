// Package session holds the current bearer token and persists it across runs.
//
// The token file is the only durable session state. Its presence is the sole
// authorization signal: no structure or expiry checks happen client-side, the
// backend decides whether a token is still good.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v5"
)

// Store is the session store. It is threaded explicitly through the dispatcher
// into commands and the API client; there is no package-level session.
type Store struct {
	path string

	mu    sync.RWMutex
	token string
}

// Open rehydrates a store from the token file at path. A missing file means
// no session; any other read error is surfaced.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read session token: %w", err)
	}
	s.token = strings.TrimSpace(string(data))
	return s, nil
}

// Token returns the current bearer token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// LoggedIn reports whether a session token is present.
func (s *Store) LoggedIn() bool {
	return s.Token() != ""
}

// Login stores the token in memory and on disk. The write is synchronous:
// once Login returns, every later Token call and every new process observes
// the session. File mode is 0600.
func (s *Store) Login(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to save session token: %w", err)
	}
	s.token = token
	return nil
}

// Logout clears the token from memory and removes the token file.
// Logging out while logged out is not an error.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session token: %w", err)
	}
	s.token = ""
	return nil
}

// Claims is the subset of JWT claims surfaced for display.
type Claims struct {
	Subject string
	Email   string
}

// Claims decodes the token as a JWT without verifying it; verification is
// the backend's job, this is display only. ok is false when there is no
// session or the token is not a parseable JWT (opaque tokens are fine too).
func (s *Store) Claims() (Claims, bool) {
	token := s.Token()
	if token == "" {
		return Claims{}, false
	}

	var mc jwt.MapClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &mc); err != nil {
		return Claims{}, false
	}

	var c Claims
	if sub, err := mc.GetSubject(); err == nil {
		c.Subject = sub
	}
	if email, ok := mc["email"].(string); ok {
		c.Email = email
	}
	return c, true
}
