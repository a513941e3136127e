// internal/demoserver/hub.go
package demoserver

import (
	"net/http"
	"sync"

	"petbloom/internal/domain/commerce"
	"petbloom/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Hub fans order events out to connected clients, keyed by user id.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*hubClient]bool
	logger  *zap.Logger
}

type hubClient struct {
	userID string
	send   chan commerce.OrderEvent
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The demo backend accepts any origin; it is not internet-facing.
	CheckOrigin: func(*http.Request) bool { return true },
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[string]map[*hubClient]bool),
		logger:  logger,
	}
}

func (h *Hub) register(c *hubClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[c.userID] == nil {
		h.clients[c.userID] = make(map[*hubClient]bool)
	}
	h.clients[c.userID][c] = true
}

func (h *Hub) unregister(c *hubClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.clients[c.userID]; ok {
		if set[c] {
			delete(set, c)
			close(c.send)
		}
		if len(set) == 0 {
			delete(h.clients, c.userID)
		}
	}
}

// Broadcast delivers an event to every connection the user holds.
// Slow consumers are dropped rather than blocking the sender.
func (h *Hub) Broadcast(userID string, ev commerce.OrderEvent) {
	h.mu.RLock()
	var full []*hubClient
	for c := range h.clients[userID] {
		select {
		case c.send <- ev:
		default:
			full = append(full, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range full {
		h.unregister(c)
	}
}

// HandleConnection upgrades an authenticated request to a websocket and
// streams order events until the client goes away.
func (s *Server) HandleConnection(c *gin.Context) {
	token := extractToken(c)
	if token == "" {
		response.Unauthorized(c, "missing authorization token")
		return
	}
	claims, err := s.tokens.Verify(token)
	if err != nil {
		response.Unauthorized(c, "invalid or expired token")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	client := &hubClient{
		userID: claims.Subject,
		send:   make(chan commerce.OrderEvent, 16),
	}
	s.hub.register(client)

	// Writer: push events until the hub drops the client.
	go func() {
		defer conn.Close()
		for ev := range client.send {
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		}
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	}()

	// Reader: the client sends nothing meaningful; this just detects
	// disconnects.
	go func() {
		defer s.hub.unregister(client)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
