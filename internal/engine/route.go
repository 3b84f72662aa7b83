package engine

import (
	"strings"

	"github.com/divvun/zulip-buildkite-bot/internal/domain"
)

// Pipeline name prefixes that fan builds out into per-project streams
// without per-pipeline configuration. A pipeline named
// "lang-foo-x-private" posts to the "foo" stream.
const (
	langPrefix     = "lang-"
	keyboardPrefix = "keyboard-"
)

// ResolveChannel picks the destination stream for an event. Pipelines
// following the lang-/keyboard- naming convention route to the stream
// named by their second dash-separated segment (matched
// case-insensitively); everything else goes to defaultChannel.
func ResolveChannel(event domain.Event, defaultChannel string) string {
	if event.Pipeline == nil {
		return defaultChannel
	}

	name := strings.ToLower(event.Pipeline.Name)
	if !strings.HasPrefix(name, langPrefix) && !strings.HasPrefix(name, keyboardPrefix) {
		return defaultChannel
	}

	parts := strings.Split(name, "-")
	if len(parts) < 2 {
		return defaultChannel
	}
	return parts[1]
}
