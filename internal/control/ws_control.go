package control

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/frudas24/inputkit/internal/display"
	"github.com/frudas24/inputkit/internal/session"
	"github.com/frudas24/inputkit/internal/wininput"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// errInputDisabled is reported when the session kill switch is off.
var errInputDisabled = errors.New("input disabled")

// Injector is the subset of *wininput.Injector the server drives.
type Injector interface {
	SetCursorPos(x, y int) error
	CursorPos() (int, int, error)
	DragAndDrop(x, y int) error
	ClickMouseButton(button wininput.MouseButton) error
	PressKey(vk uint8) error
}

// DisplayProvider returns the current list of displays.
type DisplayProvider func() ([]display.Display, error)

// Server handles websocket control input.
type Server struct {
	mu           sync.Mutex
	upgrader     websocket.Upgrader
	session      *session.Session
	injector     Injector
	listDisplays DisplayProvider
	logger       *zap.Logger
	now          func() time.Time
	conn         *websocket.Conn
}

// NewServer creates a control websocket server.
func NewServer(sess *session.Session, injector Injector, listDisplays DisplayProvider, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		session:      sess,
		injector:     injector,
		listDisplays: listDisplays,
		logger:       logger,
		now:          time.Now,
		// A nil CheckOrigin refuses cross-origin upgrades.
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}
}

// ServeHTTP upgrades the connection and processes control messages.
// The request must carry a valid session cookie and come from the same origin.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !s.session.Authorized(r) {
		s.logger.Warn("control upgrade without session", zap.String("remote", r.RemoteAddr))
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("control upgrade failed", zap.String("remote", r.RemoteAddr),
			zap.String("origin", r.Header.Get("Origin")), zap.Error(err))
		return
	}
	if err := s.acceptConn(conn); err != nil {
		s.logger.Warn("control connection rejected", zap.String("remote", r.RemoteAddr), zap.Error(err))
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, err.Error()))
		_ = conn.Close()
		return
	}
	defer s.cleanupConn(conn)
	s.logger.Info("control connected", zap.String("remote", r.RemoteAddr))

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug("control read ended", zap.Error(err))
			}
			return
		}
		if err := conn.WriteJSON(s.handleMessage(msg)); err != nil {
			return
		}
	}
}

// acceptConn ensures only one active control connection exists.
func (s *Server) acceptConn(conn *websocket.Conn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		return fmt.Errorf("control connection already active")
	}
	s.conn = conn
	return nil
}

// cleanupConn clears the active connection when closed.
func (s *Server) cleanupConn(conn *websocket.Conn) {
	s.mu.Lock()
	if s.conn == conn {
		s.conn = nil
	}
	s.mu.Unlock()
	_ = conn.Close()
}

// handleMessage dispatches a single control message and builds its reply.
func (s *Server) handleMessage(msg Message) Reply {
	reply := Reply{ID: msg.ID, T: msg.T}
	switch msg.T {
	case "inputEnabled":
		if msg.Enabled != nil {
			s.session.SetInputEnabled(*msg.Enabled)
			s.logger.Info("input kill switch", zap.Bool("enabled", *msg.Enabled))
		}
		reply.OK = true
		return reply
	case "pos":
		x, y, err := s.injector.CursorPos()
		if err != nil {
			reply.Error = err.Error()
			return reply
		}
		reply.OK = true
		reply.X, reply.Y = &x, &y
		return reply
	}

	if !s.session.InputEnabled() {
		reply.Error = errInputDisabled.Error()
		return reply
	}

	action, err := BuildAction(msg, s.displaysFor(msg))
	if err != nil {
		reply.Error = err.Error()
		return reply
	}
	err = s.applyAction(action)
	s.session.RecordResult(string(action.Type), err, s.now())
	if err != nil {
		reply.Error = err.Error()
		return reply
	}
	reply.OK = true
	return reply
}

// displaysFor lists displays only when msg needs them for coordinate mapping.
func (s *Server) displaysFor(msg Message) []display.Display {
	if msg.Display <= 0 || s.listDisplays == nil {
		return nil
	}
	list, err := s.listDisplays()
	if err != nil {
		s.logger.Warn("list displays failed", zap.Error(err))
		return nil
	}
	return list
}

// applyAction executes a single action.
func (s *Server) applyAction(action Action) error {
	switch action.Type {
	case ActMove:
		s.warnOffscreen(action.X, action.Y)
		return s.injector.SetCursorPos(action.X, action.Y)
	case ActDrag:
		s.warnOffscreen(action.X, action.Y)
		return s.injector.DragAndDrop(action.X, action.Y)
	case ActClick:
		return s.injector.ClickMouseButton(action.Button)
	case ActKey:
		return s.injector.PressKey(action.Key)
	default:
		return fmt.Errorf("%w %q", errUnknownMessage, action.Type)
	}
}

// warnOffscreen logs when (x, y) is outside every known display. The move still happens.
func (s *Server) warnOffscreen(x, y int) {
	if s.listDisplays == nil {
		return
	}
	list, err := s.listDisplays()
	if err != nil || len(list) == 0 {
		return
	}
	if _, ok := display.Locate(list, x, y); !ok {
		s.logger.Warn("cursor target outside all displays", zap.Int("x", x), zap.Int("y", y))
	}
}
