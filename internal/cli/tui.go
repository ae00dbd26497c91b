package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nhle/wellup/internal/app"
)

// runProgram starts the Bubble Tea program. Tests replace it.
var runProgram = func(cmd *cobra.Command, m tea.Model) error {
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	_, err := p.Run()
	return err
}

func newTUICommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:         "tui",
		Short:       "Launch the terminal UI",
		Long:        `Launch the terminal UI (same as running wellup without arguments).`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationStore: storeTUI},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, e)
		},
	}
}

func runTUI(cmd *cobra.Command, e *env) error {
	c := e.c
	defer c.Screens.Stop()
	c.Logger.Info("starting terminal UI")
	return runProgram(cmd, app.New(c.Screens, c.Notices.C(), c.Clock))
}
