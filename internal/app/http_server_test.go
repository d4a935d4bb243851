package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/frudas24/inputkit/internal/control"
	"github.com/frudas24/inputkit/internal/display"
	"github.com/frudas24/inputkit/internal/session"
	"github.com/frudas24/inputkit/internal/testutil"
	"github.com/gorilla/websocket"
)

// newTestApp returns an app over a recording platform with two displays.
func newTestApp(t *testing.T) (*App, *http.ServeMux, *testutil.FakePlatform) {
	t.Helper()
	p := &testutil.FakePlatform{X: 7, Y: 9}
	displays := []display.Display{
		{Index: 1, Bounds: display.Rect{W: 1920, H: 1080}, Primary: true},
		{Index: 2, Bounds: display.Rect{X: 1920, W: 1280, H: 1024}},
	}
	a, err := New(session.New("pw"), p.NewInjector(), func() ([]display.Display, error) { return displays, nil }, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := a.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	mux := http.NewServeMux()
	a.RegisterRoutes(mux)
	return a, mux, p
}

// login posts the password and returns the status code and session cookie, if any.
func login(mux *http.ServeMux, password string) (int, *http.Cookie) {
	body, _ := json.Marshal(loginRequest{Password: password})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			return rec.Code, c
		}
	}
	return rec.Code, nil
}

// get issues a GET with an optional session cookie.
func get(mux *http.ServeMux, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

// TestLogin_WrongPassword verifies bad passwords are rejected.
func TestLogin_WrongPassword(t *testing.T) {
	_, mux, _ := newTestApp(t)
	code, cookie := login(mux, "nope")
	if code != http.StatusUnauthorized || cookie != nil {
		t.Fatalf("expected 401 without cookie, got %d %+v", code, cookie)
	}
}

// TestLogin_MethodNotAllowed verifies login only accepts POST.
func TestLogin_MethodNotAllowed(t *testing.T) {
	_, mux, _ := newTestApp(t)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

// TestHandleState_Unauthorized verifies /api/state requires authentication.
func TestHandleState_Unauthorized(t *testing.T) {
	_, mux, _ := newTestApp(t)
	if rec := get(mux, "/api/state", nil); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

// TestHandleState_ReportsCursor verifies state includes the cursor position after login.
func TestHandleState_ReportsCursor(t *testing.T) {
	_, mux, _ := newTestApp(t)
	code, cookie := login(mux, "pw")
	if code != http.StatusOK || cookie == nil {
		t.Fatalf("expected 200 with cookie, got %d", code)
	}
	if !cookie.HttpOnly || cookie.SameSite != http.SameSiteStrictMode {
		t.Fatalf("unexpected cookie attributes %+v", cookie)
	}

	rec := get(mux, "/api/state", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp stateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Authenticated || resp.Clients != 1 || !resp.InputEnabled || resp.Cursor == nil || resp.Cursor.X != 7 || resp.Cursor.Y != 9 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

// TestHandleDisplays_ReturnsCache verifies the cached display list is served.
func TestHandleDisplays_ReturnsCache(t *testing.T) {
	_, mux, _ := newTestApp(t)
	_, cookie := login(mux, "pw")

	rec := get(mux, "/api/displays?refresh=1", cookie)
	var list []display.Display
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(list) != 2 || list[1].Bounds.X != 1920 {
		t.Fatalf("unexpected displays %+v", list)
	}
}

// TestLogout_ClearsAuth verifies logout revokes the caller's cookie only.
func TestLogout_ClearsAuth(t *testing.T) {
	_, mux, _ := newTestApp(t)
	_, mine := login(mux, "pw")
	_, other := login(mux, "pw")

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(mine)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec := get(mux, "/api/displays", mine); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if rec := get(mux, "/api/displays", other); rec.Code != http.StatusOK {
		t.Fatalf("expected other client to stay logged in, got %d", rec.Code)
	}
}

// TestLogin_FailureKeepsOperatorLoggedIn verifies a stranger's bad password does not revoke a session.
func TestLogin_FailureKeepsOperatorLoggedIn(t *testing.T) {
	_, mux, _ := newTestApp(t)
	_, cookie := login(mux, "pw")
	if code, _ := login(mux, "wrong"); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if rec := get(mux, "/api/state", cookie); rec.Code != http.StatusOK {
		t.Fatalf("expected operator to stay logged in, got %d", rec.Code)
	}
}

// TestControl_RequiresOwnSession verifies a second client cannot drive input on the operator's login.
func TestControl_RequiresOwnSession(t *testing.T) {
	_, mux, p := newTestApp(t)
	_, cookie := login(mux, "pw")
	ts := httptest.NewServer(mux)
	defer ts.Close()
	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws/control"

	header := http.Header{"Origin": {"https://evil.example"}}
	if conn, resp, err := websocket.DefaultDialer.Dial(url, header); err == nil {
		conn.Close()
		t.Fatalf("expected dial without cookie to fail")
	} else if resp == nil || resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %+v", resp)
	}

	header.Set("Cookie", (&http.Cookie{Name: cookie.Name, Value: cookie.Value}).String())
	if conn, resp, err := websocket.DefaultDialer.Dial(url, header); err == nil {
		conn.Close()
		t.Fatalf("expected cross-origin dial to fail")
	} else if resp == nil || resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403, got %+v", resp)
	}
	if len(p.Calls) != 0 {
		t.Fatalf("expected no input, got %#v", p.Calls)
	}

	header.Del("Origin")
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	if err != nil {
		t.Fatalf("operator dial failed: %v", err)
	}
	defer conn.Close()
	if err := conn.WriteJSON(control.Message{T: "key", Key: "enter"}); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	var reply control.Reply
	if err := conn.ReadJSON(&reply); err != nil || !reply.OK {
		t.Fatalf("unexpected reply %+v (%v)", reply, err)
	}
	if got := p.Names(); len(got) != 2 || got[0] != "key_down" || got[1] != "key_up" {
		t.Fatalf("unexpected calls %v", got)
	}
}

// TestStart_DisplayFailureIsNotFatal verifies injection keeps working without displays.
func TestStart_DisplayFailureIsNotFatal(t *testing.T) {
	p := &testutil.FakePlatform{}
	a, err := New(session.New("pw"), p.NewInjector(), func() ([]display.Display, error) {
		return nil, errors.New("no desktop")
	}, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := a.Start(); err != nil {
		t.Fatalf("expected Start to tolerate display errors, got %v", err)
	}
	if list, _ := a.ListDisplays(); len(list) != 0 {
		t.Fatalf("expected empty cache, got %+v", list)
	}
}

// TestNew_RequiresDependencies verifies nil dependencies are rejected.
func TestNew_RequiresDependencies(t *testing.T) {
	if _, err := New(nil, nil, nil, nil); err == nil {
		t.Fatalf("expected error")
	}
}
