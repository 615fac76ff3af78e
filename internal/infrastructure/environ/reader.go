// Package environ reads CI-provided environment variables into an immutable
// domain.EnvironmentSnapshot.
//
// All provider-specific variable names live in a VariableTable, so a
// different CI provider can be supported by swapping (or overriding) the
// table without touching the decision logic.
package environ

import (
	"os"
	"strings"

	"github.com/doeshing/cictl/internal/domain"
	"github.com/doeshing/cictl/internal/ports"
)

// VariableTable names the environment variables the reader consumes.
type VariableTable struct {
	// Event holds the event-type indicator (push, pull_request, ...).
	Event string
	// Ref holds the full ref of the build (refs/heads/..., refs/tags/...).
	Ref string
	// HeadRef holds the source branch of a pull request.
	HeadRef string
	// Stage holds the current pipeline-stage indicator.
	Stage string
	// CIFlag, Workflow and RunID together indicate an active CI run.
	CIFlag   string
	Workflow string
	RunID    string
	// RunnerOS holds the CI runner operating system name.
	RunnerOS string
	// RepoOwner holds the repository owner (used for publish credentials).
	RepoOwner string
}

// GitHubTable is the variable table for GitHub Actions runners.
func GitHubTable() VariableTable {
	return VariableTable{
		Event:     "GITHUB_EVENT_NAME",
		Ref:       "GITHUB_REF",
		HeadRef:   "GITHUB_HEAD_REF",
		Stage:     "CICTL_STAGE",
		CIFlag:    "CI",
		Workflow:  "GITHUB_WORKFLOW",
		RunID:     "GITHUB_RUN_ID",
		RunnerOS:  "RUNNER_OS",
		RepoOwner: "GITHUB_REPOSITORY_OWNER",
	}
}

// Override replaces individual table entries from a config mapping keyed by
// slot name. Unknown keys are ignored.
func (t VariableTable) Override(overrides map[string]string) VariableTable {
	for slot, name := range overrides {
		if name == "" {
			continue
		}
		switch strings.ToLower(slot) {
		case "event":
			t.Event = name
		case "ref":
			t.Ref = name
		case "head_ref":
			t.HeadRef = name
		case "stage":
			t.Stage = name
		case "ci_flag":
			t.CIFlag = name
		case "workflow":
			t.Workflow = name
		case "run_id":
			t.RunID = name
		case "runner_os":
			t.RunnerOS = name
		case "repository_owner":
			t.RepoOwner = name
		}
	}
	return t
}

func (t VariableTable) names() []string {
	return []string{
		t.Event, t.Ref, t.HeadRef, t.Stage,
		t.CIFlag, t.Workflow, t.RunID, t.RunnerOS, t.RepoOwner,
	}
}

// Reader implements ports.EnvironmentSource over the live process
// environment. Read never caches: two calls with a mutated environment in
// between return different snapshots.
type Reader struct {
	table VariableTable
}

// NewReader builds a reader for the given table.
func NewReader(table VariableTable) *Reader {
	return &Reader{table: table}
}

// Table returns the variable table the reader consumes.
func (r *Reader) Table() VariableTable {
	return r.table
}

// Read takes a fresh snapshot of the CI environment. Absent variables map
// to empty strings and "unknown" enum values; Read never fails.
func (r *Reader) Read() domain.EnvironmentSnapshot {
	raw := make(map[string]string)
	for _, name := range r.table.names() {
		if name == "" {
			continue
		}
		raw[name] = os.Getenv(name)
	}

	event := domain.ParseEventType(raw[r.table.Event])
	branch, tag := splitRef(raw[r.table.Ref])
	if event == domain.EventPullRequest {
		if head := raw[r.table.HeadRef]; head != "" {
			branch = head
		}
	}

	return domain.EnvironmentSnapshot{
		EventType:     event,
		BranchName:    branch,
		TagName:       tag,
		IsPullRequest: event == domain.EventPullRequest,
		BuildStage:    domain.ParseBuildStage(raw[r.table.Stage]),
		CIActive:      raw[r.table.CIFlag] != "" && raw[r.table.Workflow] != "" && raw[r.table.RunID] != "",
		Raw:           raw,
	}
}

// splitRef separates a provider ref into branch and tag names.
// "refs/heads/<branch>" yields a branch, "refs/tags/<tag>" a tag,
// "refs/pull/..." neither (the head ref carries the PR branch). A bare
// value is treated as a branch name.
func splitRef(ref string) (branch, tag string) {
	switch {
	case ref == "":
		return "", ""
	case strings.HasPrefix(ref, "refs/heads/"):
		return strings.TrimPrefix(ref, "refs/heads/"), ""
	case strings.HasPrefix(ref, "refs/tags/"):
		return "", strings.TrimPrefix(ref, "refs/tags/")
	case strings.HasPrefix(ref, "refs/pull/"):
		return "", ""
	default:
		return ref, ""
	}
}

var _ ports.EnvironmentSource = (*Reader)(nil)
