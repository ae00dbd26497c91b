package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nhle/wellup/internal/clock"
	"github.com/nhle/wellup/internal/model"
	"github.com/nhle/wellup/internal/ui/studyview"
)

func newStudyCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "study",
		Aliases: []string{"log"},
		Short:   "Log study hours and review progress",
	}
	cmd.AddCommand(
		newStudyAddCommand(e),
		newStudyListCommand(e),
		newStudyDeleteCommand(e),
		newStudyWeekCommand(e),
		newStudySummaryCommand(e),
	)
	return cmd
}

func newStudyAddCommand(e *env) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "add <hours> [subject]...",
		Short: "Log study hours for a day",
		Long: `Log study hours for a day. A day holds one entry: logging a day again
replaces its hours and subject.`,
		Example: `  wellup study add 2.5 Organic chemistry
  wellup study add 1 --date 2024-04-30`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return &model.ValidationError{Field: "hours", Reason: fmt.Sprintf("%q is not a number", args[0])}
			}
			day := clock.Today(e.c.Clock)
			if date != "" {
				if day, err = clock.ParseDate(date); err != nil {
					return &model.ValidationError{Field: "date", Reason: err.Error()}
				}
			}
			entry, err := e.c.Screens.Analytics.LogHours(cmd.Context(), day, hours, strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s of %s\n", entry.Date, formatHours(entry.Hours), entry.Subject)
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "Day to log as YYYY-MM-DD (default today)")
	return cmd
}

func newStudyListCommand(e *env) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List study log entries, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := model.ParseLogFilter(filter)
			if err != nil {
				return err
			}
			analytics := e.c.Screens.Analytics
			analytics.SetFilter(f)
			entries := analytics.Entries()

			w := cmd.OutOrStdout()
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(w, "No study logs.")
				return nil
			}
			tw := newTable(w)
			_, _ = fmt.Fprintln(tw, "ID\tDATE\tHOURS\tSUBJECT")
			for _, en := range entries {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", shortID(en.ID), en.Date, formatHours(en.Hours), en.Subject)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", string(model.LogFilterAll), "Window: all, week or month")
	return cmd
}

func newStudyDeleteCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a study log entry",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			analytics := e.c.Screens.Analytics
			entries := analytics.Snapshot().StudyLogs
			ids := make([]string, len(entries))
			for i, en := range entries {
				ids[i] = en.ID
			}
			id, err := matchID(ids, args[0])
			if err != nil {
				return fmt.Errorf("log %w", err)
			}
			if !analytics.DeleteLog(cmd.Context(), id) {
				return fmt.Errorf("log %q: %w", args[0], ErrNoMatch)
			}
			return nil
		},
	}
}

func newStudyWeekCommand(e *env) *cobra.Command {
	var back int

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Chart daily hours for a week",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if back < 0 {
				return &model.ValidationError{Field: "back", Reason: "must not be negative"}
			}
			analytics := e.c.Screens.Analytics
			for i := 0; i < back; i++ {
				analytics.PrevWeek()
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(w, analytics.WeekLabel())
			_, _ = fmt.Fprintln(w, studyview.RenderWeekChart(analytics.Week()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&back, "back", "b", 0, "Weeks before the current one")
	return cmd
}

func newStudySummaryCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show this week's totals and study insights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			analytics := e.c.Screens.Analytics
			s := analytics.Summary()
			in := analytics.Insights()

			best := "n/a"
			if in.BestWeekdayHours > 0 {
				best = fmt.Sprintf("%s (%s)", in.BestWeekday, formatHours(in.BestWeekdayHours))
			}

			tw := newTable(cmd.OutOrStdout())
			_, _ = fmt.Fprintf(tw, "This week:\t%s\n", formatHours(s.WeekHours))
			_, _ = fmt.Fprintf(tw, "Average per day:\t%s\n", formatHours(s.AvgPerDay))
			_, _ = fmt.Fprintf(tw, "Days logged:\t%d/7\n", s.DaysLogged)
			_, _ = fmt.Fprintf(tw, "Today:\t%s\n", formatHours(s.TodayHours))
			_, _ = fmt.Fprintf(tw, "Most productive:\t%s\n", best)
			_, _ = fmt.Fprintf(tw, "Study streak:\t%d days\n", in.Streak)
			_, _ = fmt.Fprintf(tw, "Weekly goal:\t%.0f%% of %s\n", in.GoalPercent(), formatHours(in.GoalHours))
			return tw.Flush()
		},
	}
}
