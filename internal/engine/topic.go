package engine

import "github.com/divvun/zulip-buildkite-bot/internal/domain"

// FormatTopic derives the conversation topic for an event. It depends
// only on the pipeline, never on the kind, so every event of one
// pipeline lands in the same conversation.
func FormatTopic(event domain.Event) string {
	if event.Pipeline == nil {
		return "Build"
	}

	name := event.Pipeline.Name
	if name == "" {
		name = "Buildkite"
	}
	return name + " - Build"
}
