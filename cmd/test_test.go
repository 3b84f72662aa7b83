package cmd

import (
	"strings"
	"testing"
)

func TestScenarioEvents(t *testing.T) {
	tests := []struct {
		eventType string
		count     int
		firstName string
	}{
		{"build-started", 1, "build.started"},
		{"build-passed", 1, "build.finished"},
		{"build-failed", 1, "build.finished"},
		{"build-canceled", 1, "build.finished"},
		{"job-passed", 1, "job.finished"},
		{"job-failed", 1, "job.finished"},
		{"lang-routing", 1, "build.started"},
		{"keyboard-routing", 1, "build.started"},
		{"scenario", 4, "build.started"},
		{"all", 8, "build.started"},
	}

	for _, tt := range tests {
		t.Run(tt.eventType, func(t *testing.T) {
			payloads, err := scenarioEvents(tt.eventType, 123)
			if err != nil {
				t.Fatalf("scenarioEvents failed: %v", err)
			}
			if len(payloads) != tt.count {
				t.Fatalf("got %d payloads, want %d", len(payloads), tt.count)
			}
			if payloads[0].Event != tt.firstName {
				t.Errorf("first event = %q, want %q", payloads[0].Event, tt.firstName)
			}
		})
	}
}

func TestScenarioEvents_UnknownType(t *testing.T) {
	_, err := scenarioEvents("build-imploded", 123)
	if err == nil {
		t.Fatal("expected error for unknown event type")
	}
	if !strings.Contains(err.Error(), "build-imploded") {
		t.Errorf("error should name the bad type, got: %v", err)
	}
}

func TestScenarioEvents_BuildNumberPropagates(t *testing.T) {
	payloads, err := scenarioEvents("build-started", 777)
	if err != nil {
		t.Fatalf("scenarioEvents failed: %v", err)
	}
	if payloads[0].Build == nil || payloads[0].Build.Number != 777 {
		t.Errorf("build number not propagated: %+v", payloads[0].Build)
	}
}
