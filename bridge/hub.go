package bridge

import (
	"context"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/swatchkit/swatchkit/log"
	"github.com/swatchkit/swatchkit/session"
)

// conn wraps a websocket connection with its own write lock.
type conn struct {
	ws *websocket.Conn
	mu sync.Mutex
}

func (c *conn) writeJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ws.WriteJSON(v)
}

// Hub tracks the connected editors and broadcasts palettes to them.
type Hub struct {
	mu    sync.RWMutex
	conns map[*websocket.Conn]*conn
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{conns: make(map[*websocket.Conn]*conn)}
}

// Add registers a connection.
func (h *Hub) Add(ws *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[ws] = &conn{ws: ws}
}

// Remove forgets a connection.
func (h *Hub) Remove(ws *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, ws)
}

// Len returns the number of connected editors.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Broadcast sends v to every connection, dropping those that fail.
func (h *Hub) Broadcast(v any) {
	h.mu.RLock()
	conns := make([]*conn, 0, len(h.conns))
	for _, c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.RUnlock()

	for _, c := range conns {
		if err := c.writeJSON(v); err != nil {
			log.Debugf("dropping editor %s: %s", c.ws.RemoteAddr(), err)
			h.Remove(c.ws)
			_ = c.ws.Close()
		}
	}
}

// WriteJSON writes v to a single connection.
func (h *Hub) WriteJSON(ws *websocket.Conn, v any) error {
	h.mu.RLock()
	c, ok := h.conns[ws]
	h.mu.RUnlock()

	if !ok {
		return ws.WriteJSON(v)
	}
	return c.writeJSON(v)
}

// Publish broadcasts p. Websocket editors reply through their own command stream.
func (h *Hub) Publish(_ context.Context, p session.Palette) (string, error) {
	h.Broadcast(p)
	return "", nil
}

// CloseAll closes every connection.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ws := range h.conns {
		_ = ws.Close()
		delete(h.conns, ws)
	}
}
