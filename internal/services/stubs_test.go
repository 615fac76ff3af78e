package services

import (
	"context"
	"errors"
	"time"

	"github.com/doeshing/cictl/internal/domain"
)

type scriptedExecutor struct {
	exitCodes []int
	calls     int
	commands  []string
}

func (e *scriptedExecutor) Execute(_ context.Context, command string) (domain.ExecutionResult, error) {
	e.commands = append(e.commands, command)
	code := 0
	if e.calls < len(e.exitCodes) {
		code = e.exitCodes[e.calls]
	}
	e.calls++
	return domain.ExecutionResult{ExitCode: code}, nil
}

type failingExecutor struct{}

func (failingExecutor) Execute(context.Context, string) (domain.ExecutionResult, error) {
	return domain.ExecutionResult{}, errors.New("fork/exec: no such file or directory")
}

type fakeSleeper struct {
	slept []time.Duration
}

func (s *fakeSleeper) Sleep(d time.Duration) {
	s.slept = append(s.slept, d)
}

type recordingBanner struct {
	startedCommand string
	succeeded      bool
	failed         bool
	retries        int
}

func (b *recordingBanner) RunStarted(_, command string)           { b.startedCommand = command }
func (b *recordingBanner) AttemptFailed(int, int)                 {}
func (b *recordingBanner) RetryScheduled(string, time.Duration)   { b.retries++ }
func (b *recordingBanner) RunSucceeded(string)                    { b.succeeded = true }
func (b *recordingBanner) RunFailed(string, string, int)          { b.failed = true }

type memoryHistory struct {
	saved []domain.RunRecord
}

func (m *memoryHistory) Save(rec domain.RunRecord) error { m.saved = append(m.saved, rec); return nil }
func (m *memoryHistory) Records(int, string) ([]domain.RunRecord, error) {
	return m.saved, nil
}
func (m *memoryHistory) Clear() error             { m.saved = nil; return nil }
func (m *memoryHistory) ExportJSON(string) error  { return nil }
func (m *memoryHistory) Path() string             { return "memory" }

type nopLogger struct{}

func (nopLogger) Debug(string, map[string]interface{})        {}
func (nopLogger) Info(string, map[string]interface{})         {}
func (nopLogger) Warn(string, map[string]interface{})         {}
func (nopLogger) Error(string, error, map[string]interface{}) {}

type stubConfigProvider struct {
	cfg domain.Config
	err error
}

func (s stubConfigProvider) Load(context.Context) (domain.Config, error) {
	return s.cfg, s.err
}

type stubEnvironment struct {
	snapshot domain.EnvironmentSnapshot
}

func (s stubEnvironment) Read() domain.EnvironmentSnapshot {
	return s.snapshot
}
