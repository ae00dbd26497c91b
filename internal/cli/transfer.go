package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nhle/wellup/internal/export"
)

func newExportCommand(e *env) *cobra.Command {
	var opts struct {
		Format string
		Output string
	}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every saved snapshot as JSON, YAML or TOML",
		Example: `  wellup export > backup.json
  wellup export --output backup.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := pickFormat(opts.Format, opts.Output)
			if err != nil {
				return err
			}
			bundle, err := export.Collect(cmd.Context(), e.c.Gateway, e.c.Clock.Now())
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if opts.Output != "" {
				f, err := os.Create(opts.Output)
				if err != nil {
					return fmt.Errorf("create export file: %w", err)
				}
				defer func() { _ = f.Close() }()
				w = f
			}
			if err := export.Write(w, format, bundle); err != nil {
				return err
			}
			if opts.Output != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d tasks, %d dates and %d study logs to %s\n",
					len(bundle.Data.Tasks), len(bundle.Data.ImportantDates), len(bundle.Analytics.StudyLogs), opts.Output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "json, yaml or toml (default from --output, else json)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "File to write instead of stdout")
	return cmd
}

func newImportCommand(e *env) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace every saved snapshot with an export file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := pickFormat(format, args[0])
			if err != nil {
				return err
			}
			in, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open import file: %w", err)
			}
			defer func() { _ = in.Close() }()

			bundle, err := export.Read(in, f)
			if err != nil {
				return err
			}
			if err := export.Restore(cmd.Context(), e.c.Gateway, bundle); err != nil {
				return err
			}
			e.c.Screens.OpenAll(cmd.Context())
			e.c.Logger.Info("snapshots imported", "file", args[0], "format", f)

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d tasks, %d dates and %d study logs\n",
				len(bundle.Data.Tasks), len(bundle.Data.ImportantDates), len(bundle.Analytics.StudyLogs))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "json, yaml or toml (default from the file extension)")
	return cmd
}

// pickFormat prefers an explicit format, then the file extension, then JSON.
func pickFormat(explicit, path string) (export.Format, error) {
	if explicit != "" {
		return export.ParseFormat(explicit)
	}
	if path == "" {
		return export.FormatJSON, nil
	}
	return export.FormatFromPath(path)
}
