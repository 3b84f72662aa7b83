package engine

import (
	"testing"

	"github.com/divvun/zulip-buildkite-bot/internal/domain"
)

func TestResolveChannel(t *testing.T) {
	tests := []struct {
		name     string
		pipeline *domain.Pipeline
		want     string
	}{
		{"lang pipeline", &domain.Pipeline{Name: "lang-sami-x-private"}, "sami"},
		{"keyboard pipeline", &domain.Pipeline{Name: "keyboard-finnish-public"}, "finnish"},
		{"case insensitive", &domain.Pipeline{Name: "Lang-Baz-Something"}, "baz"},
		{"routed channel is lowercased", &domain.Pipeline{Name: "keyboard-NORWEGIAN"}, "norwegian"},
		{"regular pipeline", &domain.Pipeline{Name: "regular-pipeline"}, "buildkite"},
		{"prefix only", &domain.Pipeline{Name: "lang"}, "buildkite"},
		{"empty name", &domain.Pipeline{Name: ""}, "buildkite"},
		{"no pipeline", nil, "buildkite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := domain.Event{Pipeline: tt.pipeline}
			if got := ResolveChannel(event, "buildkite"); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
