// Package session holds authentication and kill-switch state for the control server.
package session

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// CookieName is the cookie carrying a client's session token.
const CookieName = "inputkit_session"

// Snapshot represents a read-only view of the current session state.
type Snapshot struct {
	Clients      int
	InputEnabled bool
	LastOp       string
	LastError    string
	LastAt       time.Time
}

// Session holds runtime state shared by all logged-in clients.
// Each successful login gets its own token; a failed login changes nothing.
type Session struct {
	mu           sync.RWMutex
	password     string
	tokens       map[string]struct{}
	inputEnabled bool
	lastOp       string
	lastError    string
	lastAt       time.Time
}

// New returns an initialized session with the given password.
// Input starts enabled.
func New(password string) *Session {
	return &Session{
		password:     password,
		tokens:       make(map[string]struct{}),
		inputEnabled: true,
	}
}

// Authenticate validates the password and returns a new client token.
// The returned bool is false when the password does not match.
func (s *Session) Authenticate(pass string) (string, bool) {
	if pass == "" || subtle.ConstantTimeCompare([]byte(pass), []byte(s.password)) != 1 {
		return "", false
	}
	token, err := newToken()
	if err != nil {
		return "", false
	}
	s.mu.Lock()
	s.tokens[token] = struct{}{}
	s.mu.Unlock()
	return token, true
}

// Valid reports whether token belongs to a logged-in client.
func (s *Session) Valid(token string) bool {
	if token == "" {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.tokens[token]
	return ok
}

// Logout revokes token. Other clients stay logged in.
func (s *Session) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, token)
}

// Authorized reports whether r carries a valid session cookie.
func (s *Session) Authorized(r *http.Request) bool {
	return s.Valid(TokenFromRequest(r))
}

// TokenFromRequest returns the session token cookie value, or "".
func TokenFromRequest(r *http.Request) string {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

// Cookie returns the cookie that hands token to the browser.
func Cookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}

// ExpiredCookie returns a cookie that clears the session token.
func ExpiredCookie() *http.Cookie {
	c := Cookie("")
	c.MaxAge = -1
	return c
}

// SetInputEnabled toggles whether inputs are forwarded to the host.
func (s *Session) SetInputEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputEnabled = enabled
}

// InputEnabled reports whether inputs are forwarded to the host.
func (s *Session) InputEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inputEnabled
}

// RecordResult stores the outcome of the most recent injected operation.
func (s *Session) RecordResult(op string, err error, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastOp = op
	s.lastAt = at
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Clients:      len(s.tokens),
		InputEnabled: s.inputEnabled,
		LastOp:       s.lastOp,
		LastError:    s.lastError,
		LastAt:       s.lastAt,
	}
}

// newToken returns 32 random bytes as hex.
func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("session token: %w", err)
	}
	return fmt.Sprintf("%x", buf), nil
}
