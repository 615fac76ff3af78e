package cli

import (
	"github.com/spf13/cobra"

	"github.com/doeshing/cictl/internal/app"
	"github.com/doeshing/cictl/internal/domain"
)

// newStageCommands builds the pipeline-stage entry points. Each stage runs
// the commands configured for it; deploy additionally consults the deploy
// gate and exits 0 as a no-op when the gate is closed.
func newStageCommands(container *app.Container) []*cobra.Command {
	stages := []struct {
		stage domain.BuildStage
		short string
	}{
		{domain.StageInstall, "Run the configured install-stage commands"},
		{domain.StageScript, "Run the configured script-stage commands"},
		{domain.StageAfterSuccess, "Run the configured after_success-stage commands"},
		{domain.StageDeploy, "Deploy if this build is eligible, otherwise do nothing"},
	}

	var cmds []*cobra.Command
	for _, def := range stages {
		cmds = append(cmds, newStageCommand(container, def.stage, def.short))
	}
	return cmds
}

func newStageCommand(container *app.Container, stage domain.BuildStage, short string) *cobra.Command {
	var noBanner bool

	cmd := &cobra.Command{
		Use:   string(stage),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := container.Stage(!noBanner).Run(cmd.Context(), stage)
			if err != nil {
				return &ExitCodeError{Code: ExitInternal, Err: err}
			}
			if !result.Succeeded {
				return &ExitCodeError{Code: result.ExitCode}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noBanner, "no-banner", false, "Plain colored lines instead of framed banners")
	return cmd
}
