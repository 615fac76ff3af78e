package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/cictl/internal/app"
	"github.com/doeshing/cictl/internal/domain"
)

func newGetBranchCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "get_branch",
		Short: "Print the logical branch or tag of this build",
		Long: "Resolves the branch from the CI environment: a tag build reports its\n" +
			"tag name, otherwise the branch name. Prints an empty line when nothing\n" +
			"can be resolved; always exits 0.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot := container.Environment.Read()
			fmt.Fprintln(cmd.OutOrStdout(), domain.ResolveBranch(snapshot))
			return nil
		},
	}
}
