package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/nhle/wellup/internal/credential"
	"github.com/nhle/wellup/internal/model"
)

// Keyring access is swapped out in tests.
var (
	setSecret    = credential.Set
	deleteSecret = credential.Delete
)

func newConfigCommand(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "config",
		Short:       "Manage configuration",
		Annotations: map[string]string{annotationStore: storeNone},
	}
	cmd.AddCommand(
		newConfigInitCommand(e),
		newConfigShowCommand(e),
		newConfigPathCommand(e),
		newConfigDSNCommand(),
	)
	return cmd
}

func newConfigInitCommand(e *env) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := e.opts.configPath
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
			}
			if err := model.SaveConfig(path, model.DefaultAppConfig()); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}

func newConfigShowCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long: `Print the configuration after applying defaults and WELLUP_*
environment overrides. A configured DSN is masked.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := model.LoadConfig(e.opts.configPath)
			if err != nil {
				return err
			}
			if cfg.Storage.DSN != "" {
				cfg.Storage.DSN = "********"
			}
			out, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func newConfigPathCommand(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), e.opts.configPath)
			return nil
		},
	}
}

func newConfigDSNCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dsn",
		Short: "Store the PostgreSQL DSN in the system keyring",
		Long: fmt.Sprintf(`Store the PostgreSQL connection string in the system keyring. It is
used when storage.driver is postgres, storage.dsn is empty and %s
is unset.`, credential.DSNEnv),
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "set <dsn>",
			Short: "Save the DSN",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				dsn := strings.TrimSpace(args[0])
				if dsn == "" {
					return &model.ValidationError{Field: "dsn", Reason: "must not be empty"}
				}
				if err := setSecret(credential.PostgresDSNKey, dsn); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "DSN saved to keyring")
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove the saved DSN",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				err := deleteSecret(credential.PostgresDSNKey)
				if err != nil && !errors.Is(err, credential.ErrNotFound) {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "DSN removed from keyring")
				return nil
			},
		},
	)
	return cmd
}
