package cli

import (
	"github.com/spf13/cobra"

	"github.com/doeshing/cictl/internal/app"
	"github.com/doeshing/cictl/internal/domain"
	"github.com/doeshing/cictl/internal/services"
)

func newRunCommand(container *app.Container) *cobra.Command {
	var (
		retry       int
		sleep       int
		noBanner    bool
		hideCommand bool
	)

	cmd := &cobra.Command{
		Use:   "run <description> <command>",
		Short: "Run a shell command with bounded retries",
		Long: "Runs the command through the configured shell, wrapped in banner\n" +
			"output. On failure the command is retried up to --retry times with\n" +
			"--sleep seconds between attempts. The process exit code mirrors the\n" +
			"final attempt's exit code.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := container.Runner(!noBanner).Run(cmd.Context(), services.RunRequest{
				Description: args[0],
				Command:     args[1],
				Policy:      domain.RetryPolicy{MaxRetries: retry, SleepSeconds: sleep},
				HideCommand: hideCommand,
			})
			if err != nil {
				return &ExitCodeError{Code: ExitInternal, Err: err}
			}
			if !result.Succeeded {
				return &ExitCodeError{Code: result.ExitCode}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&retry, "retry", 0, "Retry the command N times on failure")
	cmd.Flags().IntVar(&sleep, "sleep", 0, "Seconds to sleep between retries")
	cmd.Flags().BoolVar(&noBanner, "no-banner", false, "Plain colored lines instead of framed banners")
	cmd.Flags().BoolVar(&hideCommand, "hide-command", false, "Mask the command in output and history (for secrets)")
	return cmd
}
