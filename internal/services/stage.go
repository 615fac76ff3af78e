package services

import (
	"context"
	"fmt"

	"github.com/doeshing/cictl/internal/domain"
	"github.com/doeshing/cictl/internal/ports"
)

// StageService runs the configured commands of a pipeline stage through the
// retrying runner. The deploy stage additionally consults the deploy gate:
// a closed gate means the stage exits successfully having done nothing.
type StageService struct {
	Config ports.ConfigProvider
	Env    ports.EnvironmentSource
	Runner *RunnerService
	Logger ports.Logger
}

// Run executes one pipeline stage. The result mirrors the first failing
// command, or reports success when every command (possibly none) passed.
func (s *StageService) Run(ctx context.Context, stage domain.BuildStage) (domain.CommandResult, error) {
	cfg, err := s.Config.Load(ctx)
	if err != nil {
		return domain.CommandResult{}, fmt.Errorf("loading config: %w", err)
	}

	if stage == domain.StageDeploy {
		snapshot := s.effectiveSnapshot(stage)
		if !domain.ShouldDeploy(snapshot, cfg.ReleaseBranch, cfg.DeployBuildStage()) {
			s.Logger.Info("deploy gate closed, nothing to do", map[string]interface{}{
				"branch":         domain.ResolveBranch(snapshot),
				"release_branch": cfg.ReleaseBranch,
				"pull_request":   snapshot.IsPullRequest,
				"stage":          string(snapshot.BuildStage),
			})
			return domain.CommandResult{ExitCode: 0, Succeeded: true}, nil
		}
	}

	commands := cfg.StageCommands(stage)
	if len(commands) == 0 {
		s.Logger.Info("no commands configured for stage", map[string]interface{}{
			"stage": string(stage),
		})
		return domain.CommandResult{ExitCode: 0, Succeeded: true}, nil
	}

	for _, sc := range commands {
		result, err := s.Runner.Run(ctx, RunRequest{
			Description: sc.Description,
			Command:     sc.Command,
			Policy:      sc.Policy(),
			HideCommand: sc.Secret,
		})
		if err != nil {
			return result, err
		}
		if !result.Succeeded {
			// stop at the first failure; its exit code becomes the stage's
			return result, nil
		}
	}
	return domain.CommandResult{ExitCode: 0, Succeeded: true}, nil
}

// effectiveSnapshot reads the environment and, when the provider exposes no
// stage indicator, attributes the invoked entry point as the current stage.
// Which stage taxonomy applies is provider-specific; the entry-point
// fallback keeps the gate meaningful on providers without one.
func (s *StageService) effectiveSnapshot(stage domain.BuildStage) domain.EnvironmentSnapshot {
	snapshot := s.Env.Read()
	if snapshot.BuildStage == domain.StageUnknown {
		snapshot.BuildStage = stage
	}
	return snapshot
}
