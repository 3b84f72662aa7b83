package api

import (
	"context"
	"expvar"
	"log/slog"
	"net/http"

	ws "github.com/divvun/zulip-buildkite-bot/internal/websocket"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Sender delivers a rendered message to the chat backend.
type Sender interface {
	SendMessage(ctx context.Context, channel, topic, content string) error
}

// NewRouter creates and configures the HTTP router.
func NewRouter(sender Sender, defaultChannel string, hub *ws.Hub, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	webhookHandler := NewWebhookHandler(sender, defaultChannel, hub, logger)

	r.Post("/webhook", webhookHandler.Receive)
	r.Get("/ws", hub.HandleWebSocket)
	r.Get("/api/v1/health", HealthHandler())
	r.Method(http.MethodGet, "/metrics", expvar.Handler())

	return r
}
