package domain

import "time"

// SecretPlaceholder replaces a command in banners, logs and history when the
// caller marked it as containing secrets.
const SecretPlaceholder = "***secret***"

// RetryPolicy bounds the retry loop of the command runner. The zero value
// means run once with no retry and no sleep.
type RetryPolicy struct {
	MaxRetries   int
	SleepSeconds int
}

// Normalize clamps negative values to zero so a policy built from CLI flags
// or config can never violate the MaxRetries >= 0, SleepSeconds >= 0
// invariant.
func (p RetryPolicy) Normalize() RetryPolicy {
	if p.MaxRetries < 0 {
		p.MaxRetries = 0
	}
	if p.SleepSeconds < 0 {
		p.SleepSeconds = 0
	}
	return p
}

// SleepDuration returns the pause between attempts.
func (p RetryPolicy) SleepDuration() time.Duration {
	return time.Duration(p.SleepSeconds) * time.Second
}

// CommandResult is the outcome of one runner invocation, after all attempts.
type CommandResult struct {
	ExitCode     int
	AttemptCount int
	Succeeded    bool
}

// Decision is the next step of the retry state machine after an attempt.
type Decision int

const (
	DecisionSuccess Decision = iota
	DecisionRetry
	DecisionExhausted
)

// NextDecision maps the outcome of attempt number `attempt` (1-based) to
// the next step. A zero exit code stops immediately; otherwise a retry is
// granted while fewer than MaxRetries retries have been used.
func NextDecision(p RetryPolicy, attempt, exitCode int) Decision {
	if exitCode == 0 {
		return DecisionSuccess
	}
	if attempt-1 < p.MaxRetries {
		return DecisionRetry
	}
	return DecisionExhausted
}

// ExecutionResult captures a single attempt of the external command as seen
// by the executor. A nonzero ExitCode is a normal outcome, not an error.
type ExecutionResult struct {
	ExitCode   int
	DurationMS int64
}
