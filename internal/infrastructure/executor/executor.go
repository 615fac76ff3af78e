// Package executor runs shell commands on the local host.
package executor

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/doeshing/cictl/internal/domain"
	"github.com/doeshing/cictl/internal/ports"
)

// LocalExecutor runs commands through the configured shell. Child output is
// streamed live to the parent's stdout/stderr, not buffered and replayed,
// so CI logs show progress as it happens.
type LocalExecutor struct {
	shell  string
	stdout io.Writer
	stderr io.Writer
}

// NewLocalExecutor builds an executor. "auto" or an empty shell resolves
// $SHELL and falls back to /bin/sh.
func NewLocalExecutor(shell string) *LocalExecutor {
	if shell == "" || shell == "auto" {
		shell = os.Getenv("SHELL")
	}
	if shell == "" {
		shell = "/bin/sh"
	}
	return &LocalExecutor{shell: shell, stdout: os.Stdout, stderr: os.Stderr}
}

// WithOutput redirects the child's stdout/stderr, mainly for tests.
func (e *LocalExecutor) WithOutput(stdout, stderr io.Writer) *LocalExecutor {
	e.stdout = stdout
	e.stderr = stderr
	return e
}

// Shell returns the resolved shell binary.
func (e *LocalExecutor) Shell() string {
	return e.shell
}

// Execute implements ports.CommandExecutor. The command string is passed to
// the shell verbatim; quoting errors surface as a nonzero child exit, not
// as a distinct error kind. Only a failure to spawn at all is an error.
func (e *LocalExecutor) Execute(ctx context.Context, command string) (domain.ExecutionResult, error) {
	c := exec.CommandContext(ctx, e.shell, "-c", command)
	c.Stdin = os.Stdin
	c.Stdout = e.stdout
	c.Stderr = e.stderr

	start := time.Now()
	err := c.Run()
	result := domain.ExecutionResult{DurationMS: time.Since(start).Milliseconds()}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}
	if err != nil {
		return domain.ExecutionResult{}, err
	}
	return result, nil
}

var _ ports.CommandExecutor = (*LocalExecutor)(nil)
