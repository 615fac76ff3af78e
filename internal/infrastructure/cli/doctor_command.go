package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/doeshing/cictl/internal/app"
)

func newDoctorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the CI environment and local setup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := container.Doctor().Run(cmd.Context())

			out := cmd.OutOrStdout()
			for _, check := range report.Checks {
				status := strings.ToUpper(string(check.Status))
				fmt.Fprintf(out, "[%s] %s - %s\n", status, check.Name, check.Details)
			}

			if err != nil {
				return &ExitCodeError{Code: ExitInternal, Err: err}
			}
			return nil
		},
	}
}
