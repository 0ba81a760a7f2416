package bridge

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/swatchkit/swatchkit/log"
	"github.com/swatchkit/swatchkit/session"
	"github.com/swatchkit/swatchkit/swatch"
)

// Renderer writes the current state of the document as HTML.
type Renderer interface {
	HTML() (string, error)
}

// Server exposes a session over HTTP: editors connect to /ws, the repainted document is
// served at /document and the palette at /api/palette.
type Server struct {
	session  *session.Session
	hub      *Hub
	doc      Renderer
	commands chan session.Command
	upgrader websocket.Upgrader
}

// NewServer creates a server for s. Commands received from editors are queued on the
// channel returned by Commands.
func NewServer(s *session.Session, hub *Hub, doc Renderer) *Server {
	return &Server{
		session:  s,
		hub:      hub,
		doc:      doc,
		commands: make(chan session.Command, 16),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// Commands returns the queue of editor commands, to be passed to Session.Serve.
func (s *Server) Commands() <-chan session.Command {
	return s.commands
}

// Register mounts the handlers on mux.
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/document", s.handleDocument)
	mux.HandleFunc("/api/palette", s.handlePalette)
	mux.HandleFunc("/api/health", s.handleHealth)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warnf("websocket upgrade: %s", err)
		return
	}

	s.hub.Add(ws)
	log.Infof("editor connected from %s", ws.RemoteAddr())

	defer func() {
		s.hub.Remove(ws)
		_ = ws.Close()
		log.Infof("editor %s disconnected", ws.RemoteAddr())
	}()

	for {
		kind, data, err := ws.ReadMessage()
		if err != nil {
			return
		}
		if kind != websocket.TextMessage {
			continue
		}

		cmd, ok := decode(data)
		if !ok {
			continue
		}

		select {
		case s.commands <- cmd:
		case <-r.Context().Done():
			return
		}
	}
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	var (
		html string
		err  error
	)
	s.session.View(func(swatch.Set) {
		html, err = s.doc.HTML()
	})
	if err != nil {
		http.Error(w, "failed to render document", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

func (s *Server) handlePalette(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.session.Palette())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "editors": s.hub.Len()})
}

// Close disconnects every editor. Pending commands stay queued.
func (s *Server) Close() {
	s.hub.CloseAll()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warnf("writeJSON: %s", err)
	}
}
