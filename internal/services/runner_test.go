package services

import (
	"context"
	"testing"
	"time"

	"github.com/doeshing/cictl/internal/domain"
)

func newTestRunner(exitCodes []int) (*RunnerService, *scriptedExecutor, *fakeSleeper, *recordingBanner, *memoryHistory) {
	executor := &scriptedExecutor{exitCodes: exitCodes}
	sleeper := &fakeSleeper{}
	sink := &recordingBanner{}
	store := &memoryHistory{}
	svc := &RunnerService{
		Executor: executor,
		Sleeper:  sleeper,
		Banner:   sink,
		History:  store,
		Logger:   nopLogger{},
	}
	return svc, executor, sleeper, sink, store
}

func TestRunnerRun_SucceedsFirstAttempt(t *testing.T) {
	svc, executor, sleeper, _, _ := newTestRunner([]int{0})

	result, err := svc.Run(context.Background(), RunRequest{
		Description: "echo",
		Command:     "echo ok",
		Policy:      domain.RetryPolicy{MaxRetries: 3, SleepSeconds: 30},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := domain.CommandResult{ExitCode: 0, AttemptCount: 1, Succeeded: true}
	if result != want {
		t.Errorf("Run() = %+v, want %+v", result, want)
	}
	if executor.calls != 1 {
		t.Errorf("executor called %d times, want 1", executor.calls)
	}
	if len(sleeper.slept) != 0 {
		t.Errorf("unexpected sleeps: %v", sleeper.slept)
	}
}

func TestRunnerRun_ExhaustsRetries(t *testing.T) {
	svc, executor, sleeper, sink, _ := newTestRunner([]int{1, 1, 1})

	result, err := svc.Run(context.Background(), RunRequest{
		Description: "always fails",
		Command:     "false",
		Policy:      domain.RetryPolicy{MaxRetries: 2, SleepSeconds: 5},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := domain.CommandResult{ExitCode: 1, AttemptCount: 3, Succeeded: false}
	if result != want {
		t.Errorf("Run() = %+v, want %+v", result, want)
	}
	if executor.calls != 3 {
		t.Errorf("executor called %d times, want 3", executor.calls)
	}
	wantSleeps := []time.Duration{5 * time.Second, 5 * time.Second}
	if len(sleeper.slept) != len(wantSleeps) {
		t.Fatalf("slept %v, want %v", sleeper.slept, wantSleeps)
	}
	for i, d := range wantSleeps {
		if sleeper.slept[i] != d {
			t.Errorf("sleep %d = %v, want %v", i, sleeper.slept[i], d)
		}
	}
	if !sink.failed {
		t.Error("failure banner not emitted")
	}
}

func TestRunnerRun_RecoversOnSecondAttempt(t *testing.T) {
	svc, executor, _, sink, store := newTestRunner([]int{1, 0})

	result, err := svc.Run(context.Background(), RunRequest{
		Description: "flaky",
		Command:     "flaky-cmd",
		Policy:      domain.RetryPolicy{MaxRetries: 3},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !result.Succeeded || result.AttemptCount != 2 {
		t.Errorf("Run() = %+v, want success on attempt 2", result)
	}
	if executor.calls != 2 {
		t.Errorf("executor called %d times, want 2", executor.calls)
	}
	if !sink.succeeded {
		t.Error("success banner not emitted")
	}
	if len(store.saved) != 1 || store.saved[0].Attempts != 2 {
		t.Errorf("history records = %+v", store.saved)
	}
}

func TestRunnerRun_DefaultPolicyRunsOnce(t *testing.T) {
	svc, executor, sleeper, _, _ := newTestRunner([]int{7})

	result, err := svc.Run(context.Background(), RunRequest{
		Description: "no retry config",
		Command:     "exit 7",
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := domain.CommandResult{ExitCode: 7, AttemptCount: 1, Succeeded: false}
	if result != want {
		t.Errorf("Run() = %+v, want %+v", result, want)
	}
	if executor.calls != 1 || len(sleeper.slept) != 0 {
		t.Errorf("calls=%d sleeps=%v, want single attempt and no sleep", executor.calls, sleeper.slept)
	}
}

func TestRunnerRun_SpawnFailureIsFatal(t *testing.T) {
	svc, _, _, _, store := newTestRunner(nil)
	svc.Executor = failingExecutor{}

	_, err := svc.Run(context.Background(), RunRequest{
		Description: "broken shell",
		Command:     "echo hi",
		Policy:      domain.RetryPolicy{MaxRetries: 5},
	})
	if err == nil {
		t.Fatal("expected spawn error to surface")
	}
	if len(store.saved) != 0 {
		t.Errorf("spawn failure must not be recorded, got %+v", store.saved)
	}
}

func TestRunnerRun_HidesSecretCommand(t *testing.T) {
	svc, _, _, sink, store := newTestRunner([]int{0})

	_, err := svc.Run(context.Background(), RunRequest{
		Description: "upload",
		Command:     "twine upload -p hunter2",
		HideCommand: true,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if sink.startedCommand != domain.SecretPlaceholder {
		t.Errorf("banner showed %q, want placeholder", sink.startedCommand)
	}
	if store.saved[0].Command != domain.SecretPlaceholder {
		t.Errorf("history stored %q, want placeholder", store.saved[0].Command)
	}
}
