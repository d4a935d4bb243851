package app

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/frudas24/inputkit/internal/display"
	"github.com/frudas24/inputkit/internal/session"
	"go.uber.org/zap"
)

// RegisterRoutes wires API handlers onto the mux.
func (a *App) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/login", a.handleLogin)
	mux.HandleFunc("/logout", a.handleLogout)
	mux.HandleFunc("/api/state", a.handleState)
	mux.HandleFunc("/api/displays", a.handleDisplays)
	mux.Handle("/ws/control", a.Control())
	mux.HandleFunc("/favicon.ico", handleFavicon)
}

type loginRequest struct {
	Password string `json:"password"`
}

type stateResponse struct {
	Authenticated bool       `json:"authenticated"`
	Clients       int        `json:"clients"`
	InputEnabled  bool       `json:"inputEnabled"`
	Cursor        *cursorPos `json:"cursor,omitempty"`
	LastOp        string     `json:"lastOp,omitempty"`
	LastError     string     `json:"lastError,omitempty"`
	LastAt        *time.Time `json:"lastAt,omitempty"`
}

type cursorPos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// handleLogin checks the password and hands the client its session cookie.
// A failed attempt leaves every existing client logged in.
func (a *App) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	token, ok := a.session.Authenticate(req.Password)
	if !ok {
		a.logger.Warn("login failed", zap.String("remote", r.RemoteAddr))
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	a.logger.Info("login", zap.String("remote", r.RemoteAddr))
	http.SetCookie(w, session.Cookie(token))
	writeJSON(w, map[string]bool{"ok": true})
}

// handleLogout revokes the caller's token and clears its cookie.
func (a *App) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	a.session.Logout(session.TokenFromRequest(r))
	http.SetCookie(w, session.ExpiredCookie())
	writeJSON(w, map[string]bool{"ok": true})
}

// handleState returns session state and the current cursor position.
func (a *App) handleState(w http.ResponseWriter, r *http.Request) {
	if !a.requireAuth(w, r) {
		return
	}
	snap := a.session.Snapshot()
	resp := stateResponse{
		Authenticated: true,
		Clients:       snap.Clients,
		InputEnabled:  snap.InputEnabled,
		LastOp:        snap.LastOp,
		LastError:     snap.LastError,
	}
	if !snap.LastAt.IsZero() {
		at := snap.LastAt
		resp.LastAt = &at
	}
	if x, y, err := a.injector.CursorPos(); err == nil {
		resp.Cursor = &cursorPos{X: x, Y: y}
	}
	writeJSON(w, resp)
}

// handleDisplays returns the display list. ?refresh=1 re-enumerates first.
func (a *App) handleDisplays(w http.ResponseWriter, r *http.Request) {
	if !a.requireAuth(w, r) {
		return
	}
	var (
		list []display.Display
		err  error
	)
	if r.URL.Query().Get("refresh") == "1" {
		list, err = a.RefreshDisplays()
	} else {
		list, err = a.ListDisplays()
	}
	if err != nil {
		http.Error(w, "failed to list displays", http.StatusInternalServerError)
		return
	}
	writeJSON(w, list)
}

// requireAuth returns false and writes an error unless r carries a valid session cookie.
func (a *App) requireAuth(w http.ResponseWriter, r *http.Request) bool {
	if !a.session.Authorized(r) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return false
	}
	return true
}

// writeJSON encodes v as the response body.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// handleFavicon avoids noisy 404s for the default browser request.
func handleFavicon(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
