package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/divvun/zulip-buildkite-bot/internal/buildkite"
	"github.com/divvun/zulip-buildkite-bot/internal/domain"
	"github.com/divvun/zulip-buildkite-bot/internal/engine"
	"github.com/divvun/zulip-buildkite-bot/internal/metrics"
	ws "github.com/divvun/zulip-buildkite-bot/internal/websocket"
)

// WebhookHandler turns inbound Buildkite deliveries into Zulip messages.
type WebhookHandler struct {
	sender         Sender
	defaultChannel string
	hub            *ws.Hub
	logger         *slog.Logger
}

func NewWebhookHandler(sender Sender, defaultChannel string, hub *ws.Hub, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		sender:         sender,
		defaultChannel: defaultChannel,
		hub:            hub,
		logger:         logger,
	}
}

type webhookResponse struct {
	Message string `json:"message"`
}

// Receive handles one webhook delivery: classify, render, route, send.
// Filtered events short-circuit with a 200 before any delivery attempt;
// a delivery failure surfaces as a 500 so Buildkite shows it on the
// webhook, but is never retried here.
func (h *WebhookHandler) Receive(w http.ResponseWriter, r *http.Request) {
	var payload buildkite.WebhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	event := domain.FromWebhook(payload)
	metrics.IncReceived(event.RawKind)

	message := engine.RenderMessage(event)
	if message == "" {
		h.logger.Info("event filtered", "event", event.RawKind)
		metrics.IncFiltered(event.RawKind)
		h.broadcast(ws.OutcomeFiltered, event, "", "", "")
		respondJSON(w, http.StatusOK, webhookResponse{Message: "Filtered"})
		return
	}

	topic := engine.FormatTopic(event)
	channel := engine.ResolveChannel(event, h.defaultChannel)

	if err := h.sender.SendMessage(r.Context(), channel, topic, message); err != nil {
		h.logger.Error("delivery failed",
			"event", event.RawKind,
			"channel", channel,
			"error", err,
		)
		metrics.IncDeliveryError(channel)
		h.broadcast(ws.OutcomeDeliveryFailed, event, channel, topic, err.Error())
		respondError(w, http.StatusInternalServerError, "failed to deliver message")
		return
	}

	h.logger.Info("message delivered",
		"event", event.RawKind,
		"channel", channel,
		"topic", topic,
	)
	metrics.IncSent(channel)
	h.broadcast(ws.OutcomeForwarded, event, channel, topic, "")
	respondJSON(w, http.StatusOK, webhookResponse{Message: "OK"})
}

func (h *WebhookHandler) broadcast(outcome string, event domain.Event, channel, topic, errMsg string) {
	if h.hub == nil {
		return
	}

	pipeline := ""
	if event.Pipeline != nil {
		pipeline = event.Pipeline.Name
	}
	h.hub.Broadcast(ws.FeedEvent{
		Outcome:   outcome,
		Event:     event.RawKind,
		Pipeline:  pipeline,
		Channel:   channel,
		Topic:     topic,
		Error:     errMsg,
		Timestamp: time.Now(),
	})
}
