package cli

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/doeshing/cictl/internal/app"
	"github.com/doeshing/cictl/internal/domain"
)

func newHistoryCommand(container *app.Container) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded command runs",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(container),
		newHistoryClearCommand(container),
		newHistoryExportCommand(container),
	)
	return historyCmd
}

func newHistoryListCommand(container *app.Container) *cobra.Command {
	var (
		limit  int
		search string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listRuns(cmd.OutOrStdout(), container, limit, search)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", domain.DefaultHistoryLimit, "Max entries to show")
	cmd.Flags().StringVar(&search, "search", "", "Filter by description or command")
	return cmd
}

func newHistoryClearCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.HistoryStore == nil {
				return fmt.Errorf("history recording is disabled")
			}
			if err := container.HistoryStore.Clear(); err != nil {
				return fmt.Errorf("failed to clear history: %w", err)
			}
			return nil
		},
	}
}

func newHistoryExportCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Export runs to a JSONL file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if container.HistoryStore == nil {
				return fmt.Errorf("history recording is disabled")
			}
			if err := container.HistoryStore.ExportJSON(args[0]); err != nil {
				return fmt.Errorf("failed to export history to %s: %w", args[0], err)
			}
			return nil
		},
	}
}

func listRuns(out io.Writer, container *app.Container, limit int, search string) error {
	if container.HistoryStore == nil {
		return fmt.Errorf("history recording is disabled")
	}

	records, err := container.HistoryStore.Records(limit, search)
	if err != nil {
		return fmt.Errorf("failed to retrieve history: %w", err)
	}
	if len(records) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	for _, rec := range records {
		status := "ok"
		if !rec.Success {
			status = fmt.Sprintf("exit %d", rec.ExitCode)
		}
		fmt.Fprintf(out, "%s | %s | attempts %d | %s | %s\n",
			humanize.Time(rec.Timestamp),
			status,
			rec.Attempts,
			rec.Description,
			rec.Command)
	}
	return nil
}
