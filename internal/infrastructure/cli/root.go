// Package cli implements the cobra front-end of cictl.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/cictl/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	root := &cobra.Command{
		Use:   "cictl",
		Short: "CI pipeline helper",
		Long: "cictl derives the logical branch of a CI build, gates deployments,\n" +
			"and runs shell commands with bounded retry-and-sleep semantics.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCommand(container))
	root.AddCommand(newGetBranchCommand(container))
	root.AddCommand(newStageCommands(container)...)
	root.AddCommand(newHistoryCommand(container))
	root.AddCommand(newConfigCommand(container))
	root.AddCommand(newDoctorCommand(container))
	return root, nil
}
