// Package metrics exposes process counters over expvar, served by the
// router's /metrics endpoint.
package metrics

import "expvar"

var (
	eventsReceived = expvar.NewMap("events_received_total")
	eventsFiltered = expvar.NewMap("events_filtered_total")
	messagesSent   = expvar.NewMap("messages_sent_total")
	deliveryErrors = expvar.NewMap("delivery_errors_total")
)

// IncReceived counts one inbound webhook by event kind.
func IncReceived(kind string) {
	eventsReceived.Add(kind, 1)
}

// IncFiltered counts one suppressed event by event kind.
func IncFiltered(kind string) {
	eventsFiltered.Add(kind, 1)
}

// IncSent counts one delivered message by destination channel.
func IncSent(channel string) {
	messagesSent.Add(channel, 1)
}

// IncDeliveryError counts one failed delivery by destination channel.
func IncDeliveryError(channel string) {
	deliveryErrors.Add(channel, 1)
}
