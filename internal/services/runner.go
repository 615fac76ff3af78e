// Package services contains the application services that orchestrate
// domain decisions with infrastructure collaborators.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/doeshing/cictl/internal/domain"
	"github.com/doeshing/cictl/internal/ports"
)

// RunRequest describes one retrying run of an external command.
type RunRequest struct {
	Description string
	Command     string
	Policy      domain.RetryPolicy
	// HideCommand masks the command in banners, logs and history.
	HideCommand bool
}

// RunnerService executes a shell command with bounded retry-and-sleep
// semantics. The retry decision itself is the pure domain.NextDecision
// state machine; spawning and sleeping are injected collaborators so tests
// run without real subprocesses or delays.
type RunnerService struct {
	Executor ports.CommandExecutor
	Sleeper  ports.Sleeper
	Banner   ports.BannerSink
	History  ports.HistoryStore
	Logger   ports.Logger
}

// Run executes the command until it succeeds or the policy is exhausted.
// A child process failing even after all retries is a normal outcome,
// reported through the CommandResult; the returned error is reserved for
// environment-level failures such as an unspawnable shell.
func (s *RunnerService) Run(ctx context.Context, req RunRequest) (domain.CommandResult, error) {
	command := strings.TrimSpace(req.Command)
	policy := req.Policy.Normalize()

	shown := command
	if req.HideCommand {
		shown = domain.SecretPlaceholder
	}

	s.Banner.RunStarted(req.Description, shown)
	s.Logger.Debug("running command", map[string]interface{}{
		"description": req.Description,
		"max_retries": policy.MaxRetries,
		"sleep_s":     policy.SleepSeconds,
	})

	start := time.Now()
	attempt := 1
	var result domain.CommandResult

loop:
	for {
		execution, err := s.Executor.Execute(ctx, command)
		if err != nil {
			s.Logger.Error("unable to spawn command", err, map[string]interface{}{
				"description": req.Description,
			})
			return domain.CommandResult{}, fmt.Errorf("spawning command: %w", err)
		}

		switch domain.NextDecision(policy, attempt, execution.ExitCode) {
		case domain.DecisionSuccess:
			result = domain.CommandResult{ExitCode: 0, AttemptCount: attempt, Succeeded: true}
			s.Banner.RunSucceeded(req.Description)
			break loop
		case domain.DecisionRetry:
			s.Banner.AttemptFailed(attempt, execution.ExitCode)
			s.Banner.RetryScheduled(req.Description, policy.SleepDuration())
			s.Sleeper.Sleep(policy.SleepDuration())
			attempt++
		case domain.DecisionExhausted:
			result = domain.CommandResult{ExitCode: execution.ExitCode, AttemptCount: attempt, Succeeded: false}
			s.Banner.RunFailed(req.Description, shown, execution.ExitCode)
			break loop
		}
	}

	s.record(req.Description, shown, result, time.Since(start))
	return result, nil
}

// record persists the run best-effort; a broken history store never fails
// the pipeline step.
func (s *RunnerService) record(description, shownCommand string, result domain.CommandResult, elapsed time.Duration) {
	if s.History == nil {
		return
	}
	rec := domain.RunRecord{
		ID:          uuid.NewString(),
		Timestamp:   time.Now(),
		Description: description,
		Command:     shownCommand,
		Attempts:    result.AttemptCount,
		ExitCode:    result.ExitCode,
		Success:     result.Succeeded,
		DurationMS:  elapsed.Milliseconds(),
	}
	if err := s.History.Save(rec); err != nil {
		s.Logger.Warn("failed to record run history", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
