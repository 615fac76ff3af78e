package domain

import "time"

// RunRecord captures one runner invocation for the history store. Commands
// marked secret are stored as SecretPlaceholder, never verbatim.
type RunRecord struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Description string    `json:"description"`
	Command     string    `json:"command"`
	Attempts    int       `json:"attempts"`
	ExitCode    int       `json:"exit_code"`
	Success     bool      `json:"success"`
	DurationMS  int64     `json:"duration_ms"`
}
