package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newThemeCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the color theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), e.c.Screens.Preferences.Theme())
			return nil
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between the light and dark theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := e.c.Screens.Preferences.ToggleTheme(cmd.Context())
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Theme set to %s\n", t)
			return nil
		},
	})
	return cmd
}
