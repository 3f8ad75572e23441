// Package server serves the trail over HTTP: a static page and a websocket
// endpoint that runs one engine per connection.
package server

import (
	"context"
	_ "embed"
	"encoding/json"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/gorilla/websocket"

	"github.com/gogpu/gg"
	trail "github.com/gogpu/ggtrail"
	"github.com/gogpu/ggtrail/surface"
	"github.com/gogpu/ggtrail/surface/remote"
)

//go:embed static/index.html
var indexHTML []byte

// Config configures a Server.
type Config struct {
	// Width and Height are reported to clients in every frame.
	Width, Height int

	// Fill is the trail color.
	Fill gg.RGBA

	// FrameRate is the per-session tick rate.
	FrameRate int

	// Options are passed to every session's engine.
	Options []trail.Option
}

// DefaultConfig returns a 60 fps server drawing a pink trail.
func DefaultConfig() Config {
	return Config{
		Width:     1280,
		Height:    720,
		Fill:      gg.Hex("#ff3366"),
		FrameRate: trail.DefaultFrameRate,
	}
}

type clientMessage struct {
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Server owns the active sessions.
type Server struct {
	cfg      Config
	upgrader websocket.Upgrader
	mux      *http.ServeMux

	mu       sync.Mutex
	sessions map[*session]struct{}
	nextID   atomic.Uint64
}

// New creates a server. Use it as an http.Handler.
func New(cfg Config) *Server {
	s := &Server{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		mux:      http.NewServeMux(),
		sessions: make(map[*session]struct{}),
	}
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/ws", s.handleWS)
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Sessions returns the number of connected clients.
func (s *Server) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Close ends every session.
func (s *Server) Close() error {
	s.mu.Lock()
	sessions := make([]*session, 0, len(s.sessions))
	for sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.close()
	}
	return nil
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		trail.Logger().Warn("websocket upgrade failed", "err", err)
		return
	}

	sess := s.open(conn)
	defer s.release(sess)

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg clientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			trail.Logger().Debug("discarding malformed message", "session", sess.id, "err", err)
			continue
		}
		switch msg.Type {
		case "pointer":
			sess.engine.AddSample(gg.Pt(msg.X, msg.Y))
		default:
			trail.Logger().Debug("unknown message type", "session", sess.id, "type", msg.Type)
		}
	}
}

type session struct {
	id      uint64
	conn    *websocket.Conn
	surface *remote.Surface
	engine  *trail.Engine
	loop    *trail.Loop
	once    sync.Once
}

func (s *Server) open(conn *websocket.Conn) *session {
	surf := remote.New(surface.Config{Width: s.cfg.Width, Height: s.cfg.Height})
	surf.Subscribe(conn)

	engine := trail.New(surf, s.cfg.Fill, s.cfg.Options...)
	sess := &session{
		id:      s.nextID.Add(1),
		conn:    conn,
		surface: surf,
		engine:  engine,
		loop:    trail.NewLoop([]trail.Ticker{engine}, trail.WithFrameRate(s.cfg.FrameRate)),
	}

	s.mu.Lock()
	s.sessions[sess] = struct{}{}
	s.mu.Unlock()

	// Start only fails on a running loop, which a fresh one never is.
	_ = sess.loop.Start(context.Background())
	trail.Logger().Info("session opened", "session", sess.id, "addr", conn.RemoteAddr())
	return sess
}

func (s *Server) release(sess *session) {
	sess.close()

	s.mu.Lock()
	delete(s.sessions, sess)
	s.mu.Unlock()
}

func (sess *session) close() {
	sess.once.Do(func() {
		sess.loop.Stop()
		sess.surface.Close()
		sess.conn.Close()
		trail.Logger().Info("session closed", "session", sess.id)
	})
}
