// Package buildkite holds the wire-level shapes of Buildkite webhook
// deliveries. Every field is optional on the wire, so the structs stay
// flat and permissive; internal/domain turns them into a typed event.
package buildkite

// Event names Buildkite sends in the top-level "event" field.
const (
	EventBuildCreated   = "build.created"
	EventBuildScheduled = "build.scheduled"
	EventBuildStarted   = "build.started"
	EventBuildRunning   = "build.running"
	EventBuildBlocked   = "build.blocked"
	EventBuildUnblocked = "build.unblocked"
	EventBuildCanceled  = "build.canceled"
	EventBuildRebuilt   = "build.rebuilt"
	EventBuildFinished  = "build.finished"
	EventBuildPassed    = "build.passed"
	EventBuildFailed    = "build.failed"

	EventJobStarted   = "job.started"
	EventJobScheduled = "job.scheduled"
	EventJobFinished  = "job.finished"
	EventJobCanceled  = "job.canceled"
	EventJobRetried   = "job.retried"
	EventJobTimedOut  = "job.timed_out"
	EventJobAssigned  = "job.assigned"

	EventAgentConnected    = "agent.connected"
	EventAgentDisconnected = "agent.disconnected"

	EventAnnotationCreated = "annotation.created"
	EventAnnotationUpdated = "annotation.updated"
	EventAnnotationDeleted = "annotation.deleted"

	EventPipelineCreated = "pipeline.created"
	EventPipelineUpdated = "pipeline.updated"
	EventPipelineDeleted = "pipeline.deleted"
)

// WebhookPayload is one webhook delivery as Buildkite posts it. Which of
// the sub-records is populated depends on the event family, but nothing
// on the wire enforces that.
type WebhookPayload struct {
	Event      string      `json:"event"`
	Build      *Build      `json:"build,omitempty"`
	Job        *Job        `json:"job,omitempty"`
	Pipeline   *Pipeline   `json:"pipeline,omitempty"`
	Agent      *Agent      `json:"agent,omitempty"`
	Annotation *Annotation `json:"annotation,omitempty"`
}

type Build struct {
	ID      string  `json:"id,omitempty"`
	Number  int     `json:"number,omitempty"`
	State   string  `json:"state,omitempty"`
	Message string  `json:"message,omitempty"`
	Commit  string  `json:"commit,omitempty"`
	Branch  string  `json:"branch,omitempty"`
	URL     string  `json:"url,omitempty"`
	WebURL  string  `json:"web_url,omitempty"`
	Author  *Author `json:"author,omitempty"`
}

type Author struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type Job struct {
	ID      string `json:"id,omitempty"`
	Name    string `json:"name,omitempty"`
	Command string `json:"command,omitempty"`
	State   string `json:"state,omitempty"`
	// ExitStatus is nil until the job has produced an exit code.
	ExitStatus *int   `json:"exit_status,omitempty"`
	WebURL     string `json:"web_url,omitempty"`
}

type Pipeline struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name,omitempty"`
	Slug   string `json:"slug,omitempty"`
	URL    string `json:"url,omitempty"`
	WebURL string `json:"web_url,omitempty"`
	// Repository is the checkout URL as configured in Buildkite, usually
	// git@host:owner/repo.git or an https URL ending in .git.
	Repository string    `json:"repository,omitempty"`
	Provider   *Provider `json:"provider,omitempty"`
}

type Provider struct {
	ID            string            `json:"id,omitempty"`
	Settings      *ProviderSettings `json:"settings,omitempty"`
	RepositoryURL string            `json:"repository_url,omitempty"`
}

type ProviderSettings struct {
	// Repository is a bare owner/repo slug.
	Repository string `json:"repository,omitempty"`
}

type Agent struct {
	ID              string `json:"id,omitempty"`
	Name            string `json:"name,omitempty"`
	Hostname        string `json:"hostname,omitempty"`
	Version         string `json:"version,omitempty"`
	ConnectionState string `json:"connection_state,omitempty"`
	IPAddress       string `json:"ip_address,omitempty"`
}

type Annotation struct {
	ID        string `json:"id,omitempty"`
	Body      string `json:"body,omitempty"`
	Style     string `json:"style,omitempty"`
	Context   string `json:"context,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}
