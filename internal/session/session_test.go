package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// TestAuthenticate_Success verifies successful authentication issues a valid token.
func TestAuthenticate_Success(t *testing.T) {
	s := New("secret")
	token, ok := s.Authenticate("secret")
	if !ok || token == "" {
		t.Fatalf("expected authentication to succeed")
	}
	if !s.Valid(token) {
		t.Fatalf("expected token to be valid")
	}
}

// TestAuthenticate_Fail verifies failed authentication issues nothing.
func TestAuthenticate_Fail(t *testing.T) {
	s := New("secret")
	if token, ok := s.Authenticate("nope"); ok || token != "" {
		t.Fatalf("expected authentication to fail")
	}
	if snap := s.Snapshot(); snap.Clients != 0 {
		t.Fatalf("expected no clients, got %d", snap.Clients)
	}
}

// TestAuthenticate_FailureKeepsOtherClients verifies a wrong password does not log anyone out.
func TestAuthenticate_FailureKeepsOtherClients(t *testing.T) {
	s := New("secret")
	token, _ := s.Authenticate("secret")
	if _, ok := s.Authenticate("wrong"); ok {
		t.Fatalf("expected authentication to fail")
	}
	if !s.Valid(token) {
		t.Fatalf("expected existing token to survive a failed login")
	}
}

// TestAuthenticate_TokensAreDistinct verifies each login gets its own token.
func TestAuthenticate_TokensAreDistinct(t *testing.T) {
	s := New("secret")
	a, _ := s.Authenticate("secret")
	b, _ := s.Authenticate("secret")
	if a == b {
		t.Fatalf("expected distinct tokens, got %q twice", a)
	}
	if snap := s.Snapshot(); snap.Clients != 2 {
		t.Fatalf("expected 2 clients, got %d", snap.Clients)
	}
}

// TestLogout verifies logout revokes only the given token.
func TestLogout(t *testing.T) {
	s := New("secret")
	a, _ := s.Authenticate("secret")
	b, _ := s.Authenticate("secret")
	s.Logout(a)
	if s.Valid(a) {
		t.Fatalf("expected revoked token")
	}
	if !s.Valid(b) {
		t.Fatalf("expected other token to stay valid")
	}
}

// TestValid_RejectsUnknown verifies empty and made-up tokens are refused.
func TestValid_RejectsUnknown(t *testing.T) {
	s := New("secret")
	s.Authenticate("secret")
	for _, token := range []string{"", "deadbeef"} {
		if s.Valid(token) {
			t.Fatalf("expected %q to be invalid", token)
		}
	}
}

// TestAuthorized_ReadsCookie verifies requests are authorized by their session cookie.
func TestAuthorized_ReadsCookie(t *testing.T) {
	s := New("secret")
	token, _ := s.Authenticate("secret")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if s.Authorized(req) {
		t.Fatalf("expected request without cookie to be refused")
	}
	req.AddCookie(Cookie(token))
	if !s.Authorized(req) {
		t.Fatalf("expected request with cookie to be authorized")
	}
}

// TestCookie_Attributes verifies the session cookie is HttpOnly and SameSite=Strict.
func TestCookie_Attributes(t *testing.T) {
	c := Cookie("abc")
	if !c.HttpOnly || c.SameSite != http.SameSiteStrictMode || c.Name != CookieName || c.Path != "/" {
		t.Fatalf("unexpected cookie %+v", c)
	}
	if exp := ExpiredCookie(); exp.MaxAge >= 0 || exp.Value != "" {
		t.Fatalf("unexpected expired cookie %+v", exp)
	}
}

// TestInputEnabled_Toggle verifies input enabled toggle.
func TestInputEnabled_Toggle(t *testing.T) {
	s := New("secret")
	s.SetInputEnabled(false)
	if s.InputEnabled() {
		t.Fatalf("expected input disabled")
	}
	s.SetInputEnabled(true)
	if !s.InputEnabled() {
		t.Fatalf("expected input enabled")
	}
}

// TestAuthenticate_EmptyPasswordNeverMatches verifies an unset password cannot be matched.
func TestAuthenticate_EmptyPasswordNeverMatches(t *testing.T) {
	s := New("")
	if _, ok := s.Authenticate(""); ok {
		t.Fatalf("expected empty password to be rejected")
	}
}

// TestSnapshot verifies snapshot content.
func TestSnapshot(t *testing.T) {
	s := New("secret")
	s.Authenticate("secret")
	s.SetInputEnabled(false)
	at := time.Unix(100, 0)
	s.RecordResult("click", errors.New("blocked"), at)
	snap := s.Snapshot()
	if snap.Clients != 1 || snap.InputEnabled || snap.LastOp != "click" || snap.LastError != "blocked" || !snap.LastAt.Equal(at) {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}

	s.RecordResult("key", nil, at)
	if snap := s.Snapshot(); snap.LastError != "" || snap.LastOp != "key" {
		t.Fatalf("expected cleared error, got %+v", snap)
	}
}
