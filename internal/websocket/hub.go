// Package websocket streams notification outcomes to connected clients,
// giving operators a live feed of what the bot forwarded, filtered or
// failed to deliver.
package websocket

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Outcome labels used in feed events.
const (
	OutcomeForwarded      = "forwarded"
	OutcomeFiltered       = "filtered"
	OutcomeDeliveryFailed = "delivery_failed"
)

// FeedEvent is one processed webhook as shown on the live feed.
type FeedEvent struct {
	Outcome   string    `json:"outcome"`
	Event     string    `json:"event"`
	Pipeline  string    `json:"pipeline,omitempty"`
	Channel   string    `json:"channel,omitempty"`
	Topic     string    `json:"topic,omitempty"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // the feed carries no secrets
	},
}

// Hub fans feed events out to every connected WebSocket client. A client
// that cannot keep up is dropped rather than allowed to stall the feed.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]chan []byte
	logger  *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]chan []byte),
		logger:  logger,
	}
}

// Broadcast sends a feed event to all connected clients.
func (h *Hub) Broadcast(event FeedEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to marshal feed event", "error", err)
		return
	}

	h.mu.Lock()
	for conn, send := range h.clients {
		select {
		case send <- data:
		default:
			// Buffer full: drop the client instead of blocking.
			delete(h.clients, conn)
			close(send)
			conn.Close()
		}
	}
	h.mu.Unlock()
}

// HandleWebSocket upgrades the connection and registers the client.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	send := make(chan []byte, 64)
	h.mu.Lock()
	h.clients[conn] = send
	total := len(h.clients)
	h.mu.Unlock()
	h.logger.Debug("feed client connected", "total_clients", total)

	go h.writeLoop(conn, send)
	go h.readLoop(conn)
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// remove unregisters a client; safe to call more than once per client.
func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	send, ok := h.clients[conn]
	if ok {
		delete(h.clients, conn)
		close(send)
	}
	h.mu.Unlock()

	if ok {
		conn.Close()
		h.logger.Debug("feed client disconnected", "total_clients", h.ClientCount())
	}
}

func (h *Hub) writeLoop(conn *websocket.Conn, send <-chan []byte) {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case message, ok := <-send:
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
				h.remove(conn)
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.remove(conn)
				return
			}
		}
	}
}

// readLoop consumes client frames so pings/pongs and closes are handled.
func (h *Hub) readLoop(conn *websocket.Conn) {
	defer h.remove(conn)

	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
