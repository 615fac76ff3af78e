// Package ports defines the interfaces (ports) between the application core
// and the infrastructure adapters.
//
// The application services depend only on these abstractions; concrete
// implementations (environment reader, shell executor, banner printer,
// history stores) live in the infrastructure layer and are wired together by
// the app container. This keeps the retry loop and the deploy decisions
// testable with stub collaborators: no real subprocesses, no real sleeping,
// no real CI environment.
package ports

import (
	"context"
	"time"

	"github.com/doeshing/cictl/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.cictl/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// EnvironmentSource takes a fresh snapshot of the CI environment. Each call
// reflects the process environment at call time; implementations must not
// cache across calls.
type EnvironmentSource interface {
	Read() domain.EnvironmentSnapshot
}

// CommandExecutor runs one attempt of a shell command, streaming child
// output live to the caller's stdout/stderr. A nonzero child exit is
// reported in the result, not as an error; a returned error means the
// command could not be spawned at all.
type CommandExecutor interface {
	Execute(ctx context.Context, command string) (domain.ExecutionResult, error)
}

// Sleeper pauses between retry attempts. Injected so tests can observe
// sleep durations without real waiting.
type Sleeper interface {
	Sleep(d time.Duration)
}

// BannerSink receives structured runner lifecycle events and renders them.
// Formatting is entirely the sink's concern; the retry loop only reports
// what happened.
type BannerSink interface {
	RunStarted(description, command string)
	AttemptFailed(attempt, exitCode int)
	RetryScheduled(description string, sleep time.Duration)
	RunSucceeded(description string)
	RunFailed(description, command string, exitCode int)
}

// HistoryStore persists run records.
type HistoryStore interface {
	Save(domain.RunRecord) error
	Records(limit int, search string) ([]domain.RunRecord, error)
	Clear() error
	ExportJSON(dest string) error
	Path() string
}

// Logger provides structured logging for the application layer.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
