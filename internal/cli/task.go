package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nhle/wellup/internal/clock"
	"github.com/nhle/wellup/internal/model"
	"github.com/nhle/wellup/internal/ui/tasklist"
)

func newTaskCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "task",
		Aliases: []string{"tasks", "t"},
		Short:   "Manage tasks",
	}
	cmd.AddCommand(
		newTaskAddCommand(e),
		newTaskListCommand(e),
		newTaskToggleCommand(e),
		newTaskDeleteCommand(e),
	)
	return cmd
}

func newTaskAddCommand(e *env) *cobra.Command {
	var opts struct {
		Priority string
		Deadline string
	}

	cmd := &cobra.Command{
		Use:   "add <title>...",
		Short: "Add a task",
		Long: `Add a task. The XP it pays on completion depends on its priority:
low 10, medium 20, high 30, plus an urgency bonus of 20, 10 or 5 when the
deadline is at most 1, 3 or 7 days away.

Examples:
  wellup task add Finish lab report --priority high --deadline 2024-05-03
  wellup task add "Read chapter 4"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := model.ParsePriority(opts.Priority)
			if err != nil {
				return err
			}
			var deadline *clock.Date
			if opts.Deadline != "" {
				d, err := clock.ParseDate(opts.Deadline)
				if err != nil {
					return &model.ValidationError{Field: "deadline", Reason: err.Error()}
				}
				deadline = &d
			}

			t, err := e.c.Screens.Tasks.AddTask(cmd.Context(), strings.Join(args, " "), deadline, p)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added task %s (+%d XP on completion)\n", shortID(t.ID), t.XPValue)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", string(model.PriorityMedium), "Priority: low, medium or high")
	cmd.Flags().StringVarP(&opts.Deadline, "deadline", "d", "", "Deadline as YYYY-MM-DD")
	return cmd
}

func newTaskListCommand(e *env) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := model.ParseTaskFilter(filter)
			if err != nil {
				return err
			}
			screen := e.c.Screens.Tasks
			screen.SetFilter(f)
			tasks := screen.VisibleTasks()

			w := cmd.OutOrStdout()
			if len(tasks) == 0 {
				_, _ = fmt.Fprintln(w, "No tasks.")
				return nil
			}

			now := e.c.Clock.Now()
			tw := newTable(w)
			_, _ = fmt.Fprintln(tw, "ID\tDONE\tPRIORITY\tTITLE\tDEADLINE\tXP")
			for _, t := range tasks {
				done := " "
				if t.Completed {
					done = "x"
				}
				deadline := ""
				if t.Deadline != nil {
					deadline = tasklist.DeadlineLabel(now, *t.Deadline, t.Completed)
				}
				_, _ = fmt.Fprintf(tw, "%s\t[%s]\t%s\t%s\t%s\t%d\n",
					shortID(t.ID), done, t.Priority, t.Title, deadline, t.XPValue)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", string(model.FilterAll), "Filter: all, active, completed or high")
	return cmd
}

func newTaskToggleCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "toggle <id>",
		Aliases: []string{"done"},
		Short:   "Complete a task, or reopen a completed one",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(e, args[0])
			if err != nil {
				return err
			}
			res, ok := e.c.Screens.Tasks.ToggleTask(cmd.Context(), id)
			if !ok {
				return fmt.Errorf("task %q: %w", args[0], ErrNoMatch)
			}
			if !res.Task.Completed {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Reopened %q (%d XP)\n", res.Task.Title, res.XPDelta)
			}
			return nil
		},
	}
}

func newTaskDeleteCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(e, args[0])
			if err != nil {
				return err
			}
			if !e.c.Screens.Tasks.DeleteTask(cmd.Context(), id) {
				return fmt.Errorf("task %q: %w", args[0], ErrNoMatch)
			}
			return nil
		},
	}
}

func resolveTaskID(e *env, query string) (string, error) {
	tasks := e.c.Screens.Tasks.Snapshot().Tasks
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	id, err := matchID(ids, query)
	if err != nil {
		return "", fmt.Errorf("task %w", err)
	}
	return id, nil
}
