package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nhle/wellup/internal/clock"
	"github.com/nhle/wellup/internal/model"
	"github.com/nhle/wellup/internal/screen"
)

func newDateCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "date",
		Aliases: []string{"dates"},
		Short:   "Manage important dates such as exams and deadlines",
	}
	cmd.AddCommand(
		newDateAddCommand(e),
		newDateListCommand(e),
		newDateDeleteCommand(e),
	)
	return cmd
}

func newDateAddCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "add <YYYY-MM-DD> <title>...",
		Short: "Add an important date",
		Example: `  wellup date add 2024-06-10 Chemistry final`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := clock.ParseDate(args[0])
			if err != nil {
				return &model.ValidationError{Field: "date", Reason: err.Error()}
			}
			d, err := e.c.Screens.Schedule.AddDate(cmd.Context(), strings.Join(args[1:], " "), day)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %s on %s\n", shortID(d.ID), d.Date)
			return nil
		},
	}
}

func newDateListCommand(e *env) *cobra.Command {
	var upcoming bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List important dates and active task deadlines",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			schedule := e.c.Screens.Schedule
			dates := schedule.Dates()
			if upcoming {
				dates = schedule.Upcoming()
			}
			now := e.c.Clock.Now()
			w := cmd.OutOrStdout()

			if len(dates) == 0 {
				_, _ = fmt.Fprintln(w, "No important dates.")
			} else {
				tw := newTable(w)
				_, _ = fmt.Fprintln(tw, "ID\tDATE\tIN\tTITLE")
				for _, d := range dates {
					_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", shortID(d.ID), d.Date, relativeDays(clock.DaysUntil(now, d.Date)), d.Title)
				}
				if err := tw.Flush(); err != nil {
					return err
				}
			}

			deadlines := schedule.Deadlines()
			if len(deadlines) == 0 {
				return nil
			}
			_, _ = fmt.Fprintln(w, "\nTask deadlines:")
			tw := newTable(w)
			for _, t := range deadlines {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", shortID(t.ID), t.Deadline, relativeDays(clock.DaysUntil(now, *t.Deadline)), t.Title)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVarP(&upcoming, "upcoming", "u", false, fmt.Sprintf("Only dates in the next %d days", screen.UpcomingWindow))
	return cmd
}

func newDateDeleteCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an important date",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dates := e.c.Screens.Schedule.Dates()
			ids := make([]string, len(dates))
			for i, d := range dates {
				ids[i] = d.ID
			}
			id, err := matchID(ids, args[0])
			if err != nil {
				return fmt.Errorf("date %w", err)
			}
			if !e.c.Screens.Schedule.DeleteDate(cmd.Context(), id) {
				return fmt.Errorf("date %q: %w", args[0], ErrNoMatch)
			}
			return nil
		},
	}
}

func relativeDays(n int) string {
	switch {
	case n == 0:
		return "today"
	case n == 1:
		return "tomorrow"
	case n < 0:
		return fmt.Sprintf("%dd ago", -n)
	default:
		return fmt.Sprintf("%dd", n)
	}
}
