package engine

import (
	"testing"

	"github.com/divvun/zulip-buildkite-bot/internal/domain"
)

func TestFormatTopic(t *testing.T) {
	tests := []struct {
		name     string
		pipeline *domain.Pipeline
		want     string
	}{
		{"named pipeline", &domain.Pipeline{Name: "My Awesome Pipeline"}, "My Awesome Pipeline - Build"},
		{"name missing", &domain.Pipeline{}, "Buildkite - Build"},
		{"no pipeline", nil, "Build"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := domain.Event{Pipeline: tt.pipeline}
			if got := FormatTopic(event); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
