// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package remote broadcasts trail frames to websocket subscribers as JSON.
package remote

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	trail "github.com/gogpu/ggtrail"
	"github.com/gogpu/ggtrail/surface"
)

const writeWait = 10 * time.Second

func init() {
	surface.Register("remote", 20, func(cfg surface.Config) (surface.Backend, error) {
		return New(cfg), nil
	}, nil)
}

// Frame is the message sent to subscribers on every Flush.
type Frame struct {
	Type   string  `json:"type"`
	Seq    uint64  `json:"seq"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Fill   string  `json:"fill"`
	Path   string  `json:"outline"`
	Shapes []Shape `json:"shapes"`
}

// Shape is a decoration in a Frame.
type Shape struct {
	ID       uint64       `json:"id"`
	Kind     string       `json:"kind"`
	Size     float64      `json:"size"`
	Fill     string       `json:"fill"`
	X        float64      `json:"x"`
	Y        float64      `json:"y"`
	Scale    float64      `json:"scale"`
	Rotation float64      `json:"rotation"`
	Points   [][2]float64 `json:"points,omitempty"`
}

type subscriber struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// Surface keeps a scene and pushes it to every subscriber on Flush.
type Surface struct {
	*surface.Scene

	cfg surface.Config

	mu     sync.Mutex
	subs   map[*subscriber]struct{}
	seq    uint64
	closed bool
}

// New creates a remote surface with no subscribers.
func New(cfg surface.Config) *Surface {
	return &Surface{
		Scene: surface.NewScene(),
		cfg:   cfg,
		subs:  make(map[*subscriber]struct{}),
	}
}

// Subscribe adds conn to the broadcast set. The returned function removes
// it again; it does not close conn.
func (s *Surface) Subscribe(conn *websocket.Conn) func() {
	sub := &subscriber{conn: conn}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return func() {}
	}
	s.subs[sub] = struct{}{}
	n := len(s.subs)
	s.mu.Unlock()

	trail.Logger().Debug("remote subscriber added", "addr", conn.RemoteAddr(), "subscribers", n)
	return func() { s.drop(sub) }
}

// Subscribers returns the number of connected subscribers.
func (s *Surface) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

func (s *Surface) drop(sub *subscriber) {
	s.mu.Lock()
	delete(s.subs, sub)
	s.mu.Unlock()
}

// Frame builds the message for the current scene without sending it.
func (s *Surface) Frame() Frame {
	s.mu.Lock()
	seq := s.seq
	s.mu.Unlock()
	return encodeFrame(s.Snapshot(), s.cfg, seq)
}

// Flush sends the current scene to every subscriber. Subscribers whose
// write fails are dropped and closed.
func (s *Surface) Flush() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return fmt.Errorf("remote: flush on closed surface")
	}
	s.seq++
	seq := s.seq
	subs := make([]*subscriber, 0, len(s.subs))
	for sub := range s.subs {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	if len(subs) == 0 {
		return nil
	}

	data, err := json.Marshal(encodeFrame(s.Snapshot(), s.cfg, seq))
	if err != nil {
		return fmt.Errorf("remote: marshal frame: %w", err)
	}

	for _, sub := range subs {
		sub.mu.Lock()
		sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
		err := sub.conn.WriteMessage(websocket.TextMessage, data)
		sub.mu.Unlock()
		if err != nil {
			trail.Logger().Warn("remote subscriber dropped", "addr", sub.conn.RemoteAddr(), "err", err)
			s.drop(sub)
			sub.conn.Close()
		}
	}
	return nil
}

// Close sends a close message to all subscribers and disconnects them.
// Close is idempotent.
func (s *Surface) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	subs := s.subs
	s.subs = make(map[*subscriber]struct{})
	s.mu.Unlock()

	msg := websocket.FormatCloseMessage(websocket.CloseGoingAway, "surface closed")
	for sub := range subs {
		sub.mu.Lock()
		sub.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
		sub.mu.Unlock()
		sub.conn.Close()
	}
	return nil
}

func encodeFrame(snap surface.Snapshot, cfg surface.Config, seq uint64) Frame {
	f := Frame{
		Type:   "frame",
		Seq:    seq,
		Width:  cfg.Width,
		Height: cfg.Height,
		Fill:   surface.HexColor(snap.Fill),
		Path:   snap.Outline.String(),
		Shapes: make([]Shape, 0, len(snap.Nodes)),
	}
	for _, n := range snap.Nodes {
		sh := Shape{
			ID:       uint64(n.Handle),
			Kind:     n.Shape.Kind.String(),
			Size:     n.Shape.Size,
			Fill:     surface.HexColor(n.Shape.Fill),
			X:        n.Transform.X,
			Y:        n.Transform.Y,
			Scale:    n.Transform.Scale,
			Rotation: n.Transform.Rotation,
		}
		for _, v := range n.Shape.Vertices() {
			sh.Points = append(sh.Points, [2]float64{v.X, v.Y})
		}
		f.Shapes = append(f.Shapes, sh)
	}
	return f
}
