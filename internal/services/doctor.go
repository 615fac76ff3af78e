package services

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/doeshing/cictl/internal/domain"
	"github.com/doeshing/cictl/internal/ports"
)

// DoctorService diagnoses whether the tool can do useful work in the
// current environment: CI signals present, shell resolvable, config
// loadable, history store reachable.
type DoctorService struct {
	Config  ports.ConfigProvider
	Env     ports.EnvironmentSource
	History ports.HistoryStore
	// Shell is the resolved shell binary used by the executor.
	Shell string
}

// Run collects all diagnostics. The returned error is non-nil when any
// check errored, so callers can exit nonzero while still printing the
// report.
func (s *DoctorService) Run(ctx context.Context) (domain.HealthReport, error) {
	var report domain.HealthReport

	report.Checks = append(report.Checks, s.checkConfig(ctx))
	report.Checks = append(report.Checks, s.checkEnvironment())
	report.Checks = append(report.Checks, s.checkShell())
	report.Checks = append(report.Checks, s.checkHistory())

	if !report.Healthy() {
		return report, fmt.Errorf("environment diagnostics failed")
	}
	return report, nil
}

func (s *DoctorService) checkConfig(ctx context.Context) domain.HealthCheck {
	check := domain.HealthCheck{Name: "config"}
	cfg, err := s.Config.Load(ctx)
	if err != nil {
		check.Status = domain.HealthError
		check.Details = err.Error()
		return check
	}
	check.Status = domain.HealthOK
	check.Details = fmt.Sprintf("provider=%s release_branch=%s", cfg.Provider, cfg.ReleaseBranch)
	return check
}

func (s *DoctorService) checkEnvironment() domain.HealthCheck {
	check := domain.HealthCheck{Name: "ci environment"}
	snapshot := s.Env.Read()
	branch := domain.ResolveBranch(snapshot)

	switch {
	case !snapshot.CIActive:
		check.Status = domain.HealthWarn
		check.Details = "no active CI run detected (fine for local use)"
	case branch == "":
		check.Status = domain.HealthWarn
		check.Details = fmt.Sprintf("branch unresolved, event=%s", snapshot.EventType)
	default:
		check.Status = domain.HealthOK
		check.Details = fmt.Sprintf("event=%s branch=%s", snapshot.EventType, branch)
	}
	return check
}

func (s *DoctorService) checkShell() domain.HealthCheck {
	check := domain.HealthCheck{Name: "shell"}
	path, err := exec.LookPath(s.Shell)
	if err != nil {
		check.Status = domain.HealthError
		check.Details = fmt.Sprintf("shell %q not found", s.Shell)
		return check
	}
	check.Status = domain.HealthOK
	check.Details = path
	return check
}

func (s *DoctorService) checkHistory() domain.HealthCheck {
	check := domain.HealthCheck{Name: "history"}
	if s.History == nil {
		check.Status = domain.HealthWarn
		check.Details = "history recording disabled"
		return check
	}
	if _, err := s.History.Records(1, ""); err != nil {
		check.Status = domain.HealthError
		check.Details = err.Error()
		return check
	}
	check.Status = domain.HealthOK
	check.Details = s.History.Path()
	return check
}
