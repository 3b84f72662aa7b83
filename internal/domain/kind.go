package domain

import "github.com/divvun/zulip-buildkite-bot/internal/buildkite"

// Kind identifies the family and action of one webhook delivery.
// Unrecognized wire values map to KindOther, so new upstream event kinds
// degrade to the generic fallback message instead of being dropped.
type Kind int

const (
	KindOther Kind = iota

	KindBuildCreated
	KindBuildScheduled
	KindBuildStarted
	KindBuildRunning
	KindBuildBlocked
	KindBuildUnblocked
	KindBuildCanceled
	KindBuildRebuilt
	KindBuildFinished

	KindJobStarted
	KindJobScheduled
	KindJobFinished
	KindJobCanceled
	KindJobRetried
	KindJobTimedOut
	KindJobAssigned

	KindAgentConnected
	KindAgentDisconnected

	KindAnnotationCreated
	KindAnnotationUpdated
	KindAnnotationDeleted

	KindPipelineCreated
	KindPipelineUpdated
	KindPipelineDeleted
)

// build.passed and build.failed carry their outcome in build.state, same
// as build.finished, so all three share one kind.
var kindByName = map[string]Kind{
	buildkite.EventBuildCreated:   KindBuildCreated,
	buildkite.EventBuildScheduled: KindBuildScheduled,
	buildkite.EventBuildStarted:   KindBuildStarted,
	buildkite.EventBuildRunning:   KindBuildRunning,
	buildkite.EventBuildBlocked:   KindBuildBlocked,
	buildkite.EventBuildUnblocked: KindBuildUnblocked,
	buildkite.EventBuildCanceled:  KindBuildCanceled,
	buildkite.EventBuildRebuilt:   KindBuildRebuilt,
	buildkite.EventBuildFinished:  KindBuildFinished,
	buildkite.EventBuildPassed:    KindBuildFinished,
	buildkite.EventBuildFailed:    KindBuildFinished,

	buildkite.EventJobStarted:   KindJobStarted,
	buildkite.EventJobScheduled: KindJobScheduled,
	buildkite.EventJobFinished:  KindJobFinished,
	buildkite.EventJobCanceled:  KindJobCanceled,
	buildkite.EventJobRetried:   KindJobRetried,
	buildkite.EventJobTimedOut:  KindJobTimedOut,
	buildkite.EventJobAssigned:  KindJobAssigned,

	buildkite.EventAgentConnected:    KindAgentConnected,
	buildkite.EventAgentDisconnected: KindAgentDisconnected,

	buildkite.EventAnnotationCreated: KindAnnotationCreated,
	buildkite.EventAnnotationUpdated: KindAnnotationUpdated,
	buildkite.EventAnnotationDeleted: KindAnnotationDeleted,

	buildkite.EventPipelineCreated: KindPipelineCreated,
	buildkite.EventPipelineUpdated: KindPipelineUpdated,
	buildkite.EventPipelineDeleted: KindPipelineDeleted,
}

// ParseKind maps a wire event name to its Kind, falling back to
// KindOther.
func ParseKind(name string) Kind {
	if kind, ok := kindByName[name]; ok {
		return kind
	}
	return KindOther
}

// BuildState is the lifecycle state reported in build.state.
type BuildState int

const (
	BuildStateUnknown BuildState = iota
	BuildStateRunning
	BuildStatePassed
	BuildStateFailed
	BuildStateCanceled
)

var buildStateByName = map[string]BuildState{
	"running":  BuildStateRunning,
	"passed":   BuildStatePassed,
	"failed":   BuildStateFailed,
	"canceled": BuildStateCanceled,
}

// ParseBuildState maps a wire state to its BuildState, falling back to
// BuildStateUnknown.
func ParseBuildState(state string) BuildState {
	if s, ok := buildStateByName[state]; ok {
		return s
	}
	return BuildStateUnknown
}

// AnnotationStyle is the presentation style reported in annotation.style.
type AnnotationStyle int

const (
	AnnotationStyleOther AnnotationStyle = iota
	AnnotationStyleSuccess
	AnnotationStyleWarning
	AnnotationStyleError
	AnnotationStyleInfo
)

var annotationStyleByName = map[string]AnnotationStyle{
	"success": AnnotationStyleSuccess,
	"warning": AnnotationStyleWarning,
	"error":   AnnotationStyleError,
	"info":    AnnotationStyleInfo,
}

// ParseAnnotationStyle maps a wire style to its AnnotationStyle, falling
// back to AnnotationStyleOther.
func ParseAnnotationStyle(style string) AnnotationStyle {
	if s, ok := annotationStyleByName[style]; ok {
		return s
	}
	return AnnotationStyleOther
}
