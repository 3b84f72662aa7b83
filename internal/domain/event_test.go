package domain

import (
	"testing"

	"github.com/divvun/zulip-buildkite-bot/internal/buildkite"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		name string
		want Kind
	}{
		{"build.started", KindBuildStarted},
		{"build.finished", KindBuildFinished},
		{"build.passed", KindBuildFinished},
		{"build.failed", KindBuildFinished},
		{"job.finished", KindJobFinished},
		{"agent.connected", KindAgentConnected},
		{"annotation.deleted", KindAnnotationDeleted},
		{"pipeline.updated", KindPipelineUpdated},
		{"ping", KindOther},
		{"", KindOther},
	}

	for _, tt := range tests {
		if got := ParseKind(tt.name); got != tt.want {
			t.Errorf("ParseKind(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestFromWebhook_BuildDetail(t *testing.T) {
	payload := buildkite.WebhookPayload{
		Event: "build.finished",
		Build: &buildkite.Build{
			Number:  42,
			State:   "passed",
			Message: "Fix the flaky test",
			Commit:  "abc123",
			WebURL:  "https://buildkite.com/b/42",
		},
		Pipeline: &buildkite.Pipeline{
			Name:       "my-pipeline",
			Repository: "git@github.com:org/repo.git",
			Provider: &buildkite.Provider{
				RepositoryURL: "https://github.com/org/repo",
				Settings:      &buildkite.ProviderSettings{Repository: "org/repo"},
			},
		},
	}

	event := FromWebhook(payload)

	if event.Kind != KindBuildFinished {
		t.Fatalf("kind = %d, want KindBuildFinished", event.Kind)
	}
	if event.RawKind != "build.finished" {
		t.Errorf("raw kind = %q", event.RawKind)
	}

	build, ok := event.Detail.(*BuildDetail)
	if !ok {
		t.Fatalf("detail = %T, want *BuildDetail", event.Detail)
	}
	if build.Number != 42 || build.State != BuildStatePassed {
		t.Errorf("unexpected build detail: %+v", build)
	}
	if build.Message != "Fix the flaky test" || build.Commit != "abc123" {
		t.Errorf("unexpected build detail: %+v", build)
	}

	if event.Pipeline == nil {
		t.Fatal("pipeline not carried over")
	}
	if event.Pipeline.Name != "my-pipeline" {
		t.Errorf("pipeline name = %q", event.Pipeline.Name)
	}
	if event.Pipeline.ProviderRepositoryURL != "https://github.com/org/repo" {
		t.Errorf("provider URL not flattened: %+v", event.Pipeline)
	}
	if event.Pipeline.ProviderSlug != "org/repo" {
		t.Errorf("provider slug not flattened: %+v", event.Pipeline)
	}
}

func TestFromWebhook_JobExitStatus(t *testing.T) {
	zero := 0
	payload := buildkite.WebhookPayload{
		Event: "job.finished",
		Job: &buildkite.Job{
			Name:       "Unit Tests",
			ExitStatus: &zero,
		},
	}

	event := FromWebhook(payload)

	job, ok := event.Detail.(*JobDetail)
	if !ok {
		t.Fatalf("detail = %T, want *JobDetail", event.Detail)
	}
	if job.ExitStatus == nil || *job.ExitStatus != 0 {
		t.Errorf("exit status 0 must survive as a present value, got %v", job.ExitStatus)
	}

	// Without an exit status on the wire the pointer stays nil.
	payload.Job.ExitStatus = nil
	event = FromWebhook(payload)
	if event.Detail.(*JobDetail).ExitStatus != nil {
		t.Error("missing exit status should stay nil")
	}
}

func TestFromWebhook_MissingSubRecords(t *testing.T) {
	event := FromWebhook(buildkite.WebhookPayload{Event: "build.started"})
	if event.Detail != nil {
		t.Errorf("detail should be nil without a build record, got %T", event.Detail)
	}
	if event.Pipeline != nil {
		t.Error("pipeline should be nil when absent on the wire")
	}

	event = FromWebhook(buildkite.WebhookPayload{Event: "job.finished"})
	if event.Detail != nil {
		t.Errorf("detail should be nil without a job record, got %T", event.Detail)
	}
}

func TestFromWebhook_MismatchedSubRecord(t *testing.T) {
	// A build event carrying only a job record gets no detail.
	payload := buildkite.WebhookPayload{
		Event: "build.started",
		Job:   &buildkite.Job{Name: "stray"},
	}

	if event := FromWebhook(payload); event.Detail != nil {
		t.Errorf("detail = %T, want nil", event.Detail)
	}
}

func TestFromWebhook_UnknownKindKeepsRawKind(t *testing.T) {
	event := FromWebhook(buildkite.WebhookPayload{Event: "build.sneezed"})
	if event.Kind != KindOther {
		t.Errorf("kind = %d, want KindOther", event.Kind)
	}
	if event.RawKind != "build.sneezed" {
		t.Errorf("raw kind = %q", event.RawKind)
	}
}

func TestParseBuildState(t *testing.T) {
	if got := ParseBuildState("passed"); got != BuildStatePassed {
		t.Errorf("got %d", got)
	}
	if got := ParseBuildState("exploded"); got != BuildStateUnknown {
		t.Errorf("got %d", got)
	}
}

func TestParseAnnotationStyle(t *testing.T) {
	if got := ParseAnnotationStyle("warning"); got != AnnotationStyleWarning {
		t.Errorf("got %d", got)
	}
	if got := ParseAnnotationStyle("sparkly"); got != AnnotationStyleOther {
		t.Errorf("got %d", got)
	}
}
