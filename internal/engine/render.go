// Package engine is the decision core of the bot: it classifies events
// into messages, derives the conversation topic and picks the
// destination stream. Everything here is a pure function over the domain
// event; nothing errors and nothing does I/O, so all of it is safe to
// call concurrently.
package engine

import (
	"fmt"
	"strings"

	"github.com/divvun/zulip-buildkite-bot/internal/domain"
)

// statusIcon pairs the glyph and verb describing a state.
type statusIcon struct {
	glyph string
	verb  string
}

// buildStateIcons maps terminal build states to glyph and verb. Anything
// unlisted falls back to ❓/"finished".
var buildStateIcons = map[domain.BuildState]statusIcon{
	domain.BuildStatePassed:   {"✅", "passed"},
	domain.BuildStateFailed:   {"❌", "failed"},
	domain.BuildStateCanceled: {"⏹️", "canceled"},
}

var buildStateFallbackIcon = statusIcon{"❓", "finished"}

// annotationStyleIcons maps annotation styles to a glyph. Anything
// unlisted falls back to 📝.
var annotationStyleIcons = map[domain.AnnotationStyle]string{
	domain.AnnotationStyleSuccess: "✅",
	domain.AnnotationStyleWarning: "⚠️",
	domain.AnnotationStyleError:   "❌",
	domain.AnnotationStyleInfo:    "ℹ️",
}

const annotationFallbackIcon = "📝"

// RenderMessage produces the message body for an event. An empty result
// means the event is filtered and must not be delivered; it is never an
// error.
func RenderMessage(event domain.Event) string {
	switch event.Kind {
	case domain.KindBuildCreated:
		return renderBuild(event, "🆕", "created", true)
	case domain.KindBuildScheduled:
		return renderBuild(event, "📅", "scheduled", true)
	case domain.KindBuildStarted:
		return renderBuild(event, "🔄", "started", true)
	case domain.KindBuildRunning:
		return renderBuild(event, "🏃", "running", false)
	case domain.KindBuildBlocked:
		return renderBuild(event, "🚫", "blocked", false)
	case domain.KindBuildUnblocked:
		return renderBuild(event, "🟢", "unblocked", false)
	case domain.KindBuildCanceled:
		return renderBuild(event, "⏹️", "canceled", false)
	case domain.KindBuildRebuilt:
		return renderBuild(event, "🔁", "rebuilt", false)
	case domain.KindBuildFinished:
		return renderBuildFinished(event)
	case domain.KindJobFinished:
		return renderJobFinished(event)
	case domain.KindJobStarted, domain.KindJobScheduled, domain.KindJobCanceled,
		domain.KindJobRetried, domain.KindJobTimedOut, domain.KindJobAssigned:
		// Job lifecycle chatter; only finished jobs are worth a message.
		return ""
	case domain.KindAgentConnected:
		return renderAgent(event, "🟢", "connected")
	case domain.KindAgentDisconnected:
		return renderAgent(event, "🔴", "disconnected")
	case domain.KindAnnotationCreated:
		return renderAnnotation(event, "created")
	case domain.KindAnnotationUpdated:
		return renderAnnotation(event, "updated")
	case domain.KindAnnotationDeleted:
		return renderAnnotationDeleted(event)
	case domain.KindPipelineCreated:
		return renderPipeline(event, "🆕", "created")
	case domain.KindPipelineUpdated:
		return renderPipeline(event, "📝", "updated")
	case domain.KindPipelineDeleted:
		return renderPipeline(event, "🗑️", "deleted")
	default:
		return fmt.Sprintf("📢 Buildkite event: %s", event.RawKind)
	}
}

// renderBuild renders the one-line build status sentence. For the
// start-family kinds (quote=true) a non-blank commit message is appended
// as a quoted line, with a commit link when both the SHA and a
// repository URL are known.
func renderBuild(event domain.Event, glyph, verb string, quote bool) string {
	build, ok := event.Detail.(*domain.BuildDetail)
	if !ok {
		return fmt.Sprintf("%s Build %s", glyph, verb)
	}

	head := fmt.Sprintf("%s Build [#%d](%s) %s", glyph, build.Number, urlOrPlaceholder(build.WebURL), verb)
	if !quote || strings.TrimSpace(build.Message) == "" {
		return head
	}
	return head + "\n> " + build.Message + commitLink(build, event.Pipeline)
}

func renderBuildFinished(event domain.Event) string {
	build, ok := event.Detail.(*domain.BuildDetail)
	if !ok {
		return "✅ Build finished"
	}

	icon, ok := buildStateIcons[build.State]
	if !ok {
		icon = buildStateFallbackIcon
	}
	return fmt.Sprintf("%s Build [#%d](%s) %s", icon.glyph, build.Number, urlOrPlaceholder(build.WebURL), icon.verb)
}

func renderJobFinished(event domain.Event) string {
	job, ok := event.Detail.(*domain.JobDetail)
	if !ok {
		// No job data, nothing worth reporting.
		return ""
	}

	var icon statusIcon
	switch {
	case job.ExitStatus == nil:
		// Finished without an exit code is unusual; surface it rather
		// than dropping it.
		icon = statusIcon{"❓", "finished"}
	case *job.ExitStatus == 0:
		// Successful jobs are noise.
		return ""
	default:
		icon = statusIcon{"❌", "failed"}
	}

	return fmt.Sprintf("%s Job ['%s'](%s) %s", icon.glyph, jobDisplayName(job), urlOrPlaceholder(job.WebURL), icon.verb)
}

// maxCommandDisplayLen caps how much of a job command shows up in a
// message when the job has no name.
const maxCommandDisplayLen = 40

// jobDisplayName picks a human label for a job: its name when set, else
// the first line of its command (truncated), else a fixed placeholder.
func jobDisplayName(job *domain.JobDetail) string {
	if strings.TrimSpace(job.Name) != "" {
		return job.Name
	}

	firstLine, _, _ := strings.Cut(job.Command, "\n")
	if strings.TrimSpace(firstLine) != "" {
		if len(firstLine) > maxCommandDisplayLen {
			return firstLine[:maxCommandDisplayLen-3] + "..."
		}
		return firstLine
	}

	return "unnamed job"
}

func renderAgent(event domain.Event, glyph, verb string) string {
	agent, ok := event.Detail.(*domain.AgentDetail)
	if !ok {
		return fmt.Sprintf("%s Agent %s", glyph, verb)
	}

	name := agent.Name
	if name == "" {
		name = "unknown"
	}
	host := agent.Hostname
	if host == "" {
		host = "unknown host"
	}
	return fmt.Sprintf("%s Agent '%s' %s (%s)", glyph, name, verb, host)
}

func renderAnnotation(event domain.Event, verb string) string {
	annotation, ok := event.Detail.(*domain.AnnotationDetail)
	if !ok {
		return fmt.Sprintf("%s Annotation %s", annotationFallbackIcon, verb)
	}

	glyph, ok := annotationStyleIcons[annotation.Style]
	if !ok {
		glyph = annotationFallbackIcon
	}
	return fmt.Sprintf("%s Annotation %s: %s", glyph, verb, contextOrPlaceholder(annotation.Context))
}

// Deleted annotations always use the wastebasket, whatever style they
// had.
func renderAnnotationDeleted(event domain.Event) string {
	annotation, ok := event.Detail.(*domain.AnnotationDetail)
	if !ok {
		return "🗑️ Annotation deleted"
	}
	return fmt.Sprintf("🗑️ Annotation deleted: %s", contextOrPlaceholder(annotation.Context))
}

func renderPipeline(event domain.Event, glyph, verb string) string {
	if event.Pipeline == nil {
		return fmt.Sprintf("%s Pipeline %s", glyph, verb)
	}

	name := event.Pipeline.Name
	if name == "" {
		name = "unknown"
	}
	return fmt.Sprintf("%s Pipeline '%s' %s", glyph, name, verb)
}

// commitLink builds the " ([abc1234](repo/commit/sha))" suffix, or ""
// when either the SHA or a repository URL is missing.
func commitLink(build *domain.BuildDetail, pipeline *domain.Pipeline) string {
	if build.Commit == "" {
		return ""
	}
	repoURL, ok := RepoWebURL(pipeline)
	if !ok {
		return ""
	}
	return fmt.Sprintf(" ([%s](%s/commit/%s))", shortSHA(build.Commit), repoURL, build.Commit)
}

func shortSHA(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}

func urlOrPlaceholder(u string) string {
	if u == "" {
		return "#"
	}
	return u
}

func contextOrPlaceholder(context string) string {
	if context == "" {
		return "annotation"
	}
	return context
}
