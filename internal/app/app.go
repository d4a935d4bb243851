// Package app wires the HTTP API and the control websocket together.
package app

import (
	"errors"
	"sync"

	"github.com/frudas24/inputkit/internal/control"
	"github.com/frudas24/inputkit/internal/display"
	"github.com/frudas24/inputkit/internal/session"
	"go.uber.org/zap"
)

// App coordinates the HTTP API and the control websocket server.
type App struct {
	mu           sync.Mutex
	session      *session.Session
	injector     control.Injector
	control      *control.Server
	listDisplays control.DisplayProvider
	displays     []display.Display
	logger       *zap.Logger
}

// New creates a new application with its dependencies wired.
func New(sess *session.Session, injector control.Injector, listDisplays control.DisplayProvider, logger *zap.Logger) (*App, error) {
	if sess == nil {
		return nil, errors.New("session is required")
	}
	if injector == nil {
		return nil, errors.New("injector is required")
	}
	if listDisplays == nil {
		return nil, errors.New("display provider is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	app := &App{
		session:      sess,
		injector:     injector,
		listDisplays: listDisplays,
		logger:       logger,
	}
	app.control = control.NewServer(sess, injector, app.ListDisplays, logger.Named("control"))
	return app, nil
}

// Start caches the display layout. Enumeration failures are logged, not returned.
func (a *App) Start() error {
	_, err := a.RefreshDisplays()
	if err != nil {
		a.logger.Warn("display enumeration failed", zap.Error(err))
	}
	return nil
}

// RefreshDisplays re-enumerates displays and replaces the cache.
func (a *App) RefreshDisplays() ([]display.Display, error) {
	list, err := a.listDisplays()
	if err != nil {
		return nil, err
	}
	a.mu.Lock()
	a.displays = list
	a.mu.Unlock()
	return a.ListDisplays()
}

// ListDisplays returns the cached display list.
func (a *App) ListDisplays() ([]display.Display, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]display.Display, len(a.displays))
	copy(out, a.displays)
	return out, nil
}

// Control returns the control websocket handler.
func (a *App) Control() *control.Server {
	return a.control
}
