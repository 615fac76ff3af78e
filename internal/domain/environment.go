// Package domain defines core value objects and pure decision logic for cictl.
//
// Everything in this package is side-effect free: environment snapshots are
// taken by the infrastructure layer, and the functions here only map those
// snapshots to decisions. This keeps branch resolution, deploy gating and the
// retry state machine unit-testable with synthetic data.
package domain

import "strings"

// EventType classifies what triggered the current build.
type EventType string

const (
	EventPush        EventType = "push"
	EventPullRequest EventType = "pull_request"
	EventTag         EventType = "tag"
	EventCron        EventType = "cron"
	EventManual      EventType = "manual"
	EventUnknown     EventType = "unknown"
)

// BuildStage names a phase of a single pipeline execution.
type BuildStage string

const (
	StageInstall      BuildStage = "install"
	StageScript       BuildStage = "script"
	StageAfterSuccess BuildStage = "after_success"
	StageDeploy       BuildStage = "deploy"
	StageUnknown      BuildStage = "unknown"
)

// EnvironmentSnapshot is an immutable view of the CI-provided signals,
// taken once per read from the live environment. Raw keeps every variable
// named by the provider table for forward-compatible lookups.
type EnvironmentSnapshot struct {
	EventType     EventType
	BranchName    string
	TagName       string
	IsPullRequest bool
	BuildStage    BuildStage
	CIActive      bool
	Raw           map[string]string
}

// Lookup returns the raw value of a CI variable captured in the snapshot,
// or the empty string when it was absent.
func (s EnvironmentSnapshot) Lookup(name string) string {
	return s.Raw[name]
}

// ParseEventType normalizes a provider event name. GitHub Actions names are
// the default taxonomy; unrecognized values map to EventUnknown.
func ParseEventType(raw string) EventType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "push":
		return EventPush
	case "pull_request", "pull_request_target":
		return EventPullRequest
	case "release", "tag":
		return EventTag
	case "schedule", "cron":
		return EventCron
	case "workflow_dispatch", "manual":
		return EventManual
	default:
		return EventUnknown
	}
}

// ParseBuildStage normalizes a pipeline stage name.
func ParseBuildStage(raw string) BuildStage {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "install":
		return StageInstall
	case "script":
		return StageScript
	case "after_success":
		return StageAfterSuccess
	case "deploy":
		return StageDeploy
	default:
		return StageUnknown
	}
}
