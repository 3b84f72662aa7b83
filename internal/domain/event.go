// Package domain defines the internal, classified representation of one
// webhook delivery. The wire shape stays all-optional in
// internal/buildkite; here the event kind is a closed enum and each
// family carries only the fields relevant to it.
package domain

import "github.com/divvun/zulip-buildkite-bot/internal/buildkite"

// Event is the classified form of one webhook delivery. It is created
// fresh per inbound request, never mutated, and never stored.
type Event struct {
	Kind Kind
	// RawKind is the verbatim wire value of the event field, used by the
	// generic fallback message for unrecognized kinds.
	RawKind string
	// Detail is the family-specific payload. It is nil when the delivery
	// did not carry the sub-record its kind implies; rendering degrades
	// to generic wording in that case.
	Detail Detail
	// Pipeline is carried independently of Kind: topic derivation,
	// channel routing and commit links all read it.
	Pipeline *Pipeline
}

// Detail is implemented by the per-family payload variants.
type Detail interface {
	detail()
}

type BuildDetail struct {
	Number  int
	State   BuildState
	Message string
	Commit  string
	WebURL  string
}

type JobDetail struct {
	Name    string
	Command string
	// ExitStatus is nil while the job has not produced an exit code.
	ExitStatus *int
	WebURL     string
}

type AgentDetail struct {
	Name     string
	Hostname string
}

type AnnotationDetail struct {
	Style   AnnotationStyle
	Context string
}

func (*BuildDetail) detail()      {}
func (*JobDetail) detail()        {}
func (*AgentDetail) detail()      {}
func (*AnnotationDetail) detail() {}

// Pipeline holds the pipeline context of a delivery, with the provider
// sub-structure flattened into the fields the bot actually reads.
type Pipeline struct {
	Name string
	// Repository is the checkout URL as configured in Buildkite.
	Repository string
	// ProviderRepositoryURL is the web URL the provider reports verbatim.
	ProviderRepositoryURL string
	// ProviderSlug is the bare owner/repo slug from the provider
	// settings.
	ProviderSlug string
}

// FromWebhook classifies a wire payload into the internal event model.
// It never fails: unknown kinds become KindOther and missing sub-records
// leave Detail nil.
func FromWebhook(payload buildkite.WebhookPayload) Event {
	event := Event{
		Kind:    ParseKind(payload.Event),
		RawKind: payload.Event,
	}
	if payload.Pipeline != nil {
		event.Pipeline = pipelineFromWire(payload.Pipeline)
	}

	switch event.Kind {
	case KindBuildCreated, KindBuildScheduled, KindBuildStarted,
		KindBuildRunning, KindBuildBlocked, KindBuildUnblocked,
		KindBuildCanceled, KindBuildRebuilt, KindBuildFinished:
		if payload.Build != nil {
			event.Detail = &BuildDetail{
				Number:  payload.Build.Number,
				State:   ParseBuildState(payload.Build.State),
				Message: payload.Build.Message,
				Commit:  payload.Build.Commit,
				WebURL:  payload.Build.WebURL,
			}
		}
	case KindJobStarted, KindJobScheduled, KindJobFinished,
		KindJobCanceled, KindJobRetried, KindJobTimedOut, KindJobAssigned:
		if payload.Job != nil {
			event.Detail = &JobDetail{
				Name:       payload.Job.Name,
				Command:    payload.Job.Command,
				ExitStatus: payload.Job.ExitStatus,
				WebURL:     payload.Job.WebURL,
			}
		}
	case KindAgentConnected, KindAgentDisconnected:
		if payload.Agent != nil {
			event.Detail = &AgentDetail{
				Name:     payload.Agent.Name,
				Hostname: payload.Agent.Hostname,
			}
		}
	case KindAnnotationCreated, KindAnnotationUpdated, KindAnnotationDeleted:
		if payload.Annotation != nil {
			event.Detail = &AnnotationDetail{
				Style:   ParseAnnotationStyle(payload.Annotation.Style),
				Context: payload.Annotation.Context,
			}
		}
	}
	// Pipeline and unknown kinds render from Event.Pipeline and RawKind;
	// they carry no Detail.

	return event
}

func pipelineFromWire(p *buildkite.Pipeline) *Pipeline {
	out := &Pipeline{
		Name:       p.Name,
		Repository: p.Repository,
	}
	if p.Provider != nil {
		out.ProviderRepositoryURL = p.Provider.RepositoryURL
		if p.Provider.Settings != nil {
			out.ProviderSlug = p.Provider.Settings.Repository
		}
	}
	return out
}
