package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nhle/wellup/internal/theme"
	"github.com/nhle/wellup/internal/ui"
)

func newFocusCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Focus timer statistics",
		Long: `Focus timer statistics. The timer itself runs in the terminal UI,
where each finished work session counts toward today's stats.`,
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Show today's finished work sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := e.c.Screens.Focus
			stats := f.Stats()
			tw := newTable(cmd.OutOrStdout())
			_, _ = fmt.Fprintf(tw, "Sessions today:\t%d\n", stats.SessionsToday)
			_, _ = fmt.Fprintf(tw, "Focus time:\t%s\n", f.TotalTime())
			return tw.Flush()
		},
	})
	return cmd
}

func newStatusCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show level, XP, streak and task counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ov := e.c.Screens.Tasks.Overview()
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Level %d  %d/%d XP\n", ov.Reward.Level, ov.Reward.XP, ov.Reward.XPNeeded)
			_, _ = fmt.Fprintln(w, ui.ProgressBar(ov.Progress, 30, theme.ColorMagenta))
			_, _ = fmt.Fprintf(w, "Streak: %d days\n", ov.Streak)
			_, _ = fmt.Fprintf(w, "Tasks: %d/%d completed (%d all time)\n", ov.Completed, ov.Total, ov.Reward.TasksCompleted)
			return nil
		},
	}
}
