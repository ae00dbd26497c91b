// Package cli provides the wellup command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nhle/wellup/internal/clock"
	"github.com/nhle/wellup/internal/credential"
	"github.com/nhle/wellup/internal/logging"
	"github.com/nhle/wellup/internal/model"
	"github.com/nhle/wellup/internal/screen"
	"github.com/nhle/wellup/internal/store"
)

// Command group IDs.
const (
	groupTrack = "track"
	groupData  = "data"
	groupSetup = "setup"
)

// Command annotations read by the root pre-run hook.
const (
	annotationStore = "wellup/store"
	storeNone       = "none"
	storeTUI        = "tui"
)

const noticeBuffer = 64

// Container holds the controllers and collaborators every command works on.
type Container struct {
	Config  *model.AppConfig
	Logger  *slog.Logger
	Clock   clock.Clock
	Gateway *store.Gateway
	Screens *screen.Set
	Notices *screen.ChanNotifier

	closers []io.Closer
}

// NewContainer wires one controller per screen over g and loads every
// snapshot.
func NewContainer(ctx context.Context, cfg *model.AppConfig, g *store.Gateway, c clock.Clock, logger *slog.Logger) *Container {
	if cfg == nil {
		cfg = model.DefaultAppConfig()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	n := screen.NewChanNotifier(noticeBuffer)
	set := screen.NewSet(screen.Deps{
		Gateway:  g,
		Clock:    c,
		Logger:   logger,
		Notifier: n,
		Config:   cfg,
	})
	set.OpenAll(ctx)
	return &Container{
		Config:  cfg,
		Logger:  logger,
		Clock:   c,
		Gateway: g,
		Screens: set,
		Notices: n,
	}
}

// Close stops the timers and releases the store and log file.
func (c *Container) Close() error {
	c.Screens.Stop()
	errs := []error{c.Gateway.Close()}
	for _, cl := range c.closers {
		errs = append(errs, cl.Close())
	}
	return errors.Join(errs...)
}

// flushNotices prints the notices queued by the last operation.
func (c *Container) flushNotices(w io.Writer) {
	for {
		select {
		case n := <-c.Notices.C():
			_, _ = fmt.Fprintln(w, n.Text)
		default:
			return
		}
	}
}

type rootOptions struct {
	configPath string
	ephemeral  bool
}

// env lets subcommands, which are built before flags are parsed, reach the
// container opened by the pre-run hook.
type env struct {
	opts rootOptions
	c    *Container
}

// NewRootCommand creates the root command. A non-nil container is reloaded
// from its store before each command; otherwise one is opened from the
// configuration and closed by the returned function.
func NewRootCommand(c *Container, version string) (*cobra.Command, func() error) {
	e := &env{c: c}
	preset := c != nil

	root := &cobra.Command{
		Use:   "wellup",
		Short: "Study planner with tasks, focus timer and study log",
		Long: `wellup tracks tasks, focus sessions and study hours, and rewards
finished work with XP, levels and a daily streak.

Run without a subcommand to open the terminal UI.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			mode := storeMode(cmd)
			if mode == storeNone {
				return nil
			}
			if preset {
				e.c.Screens.OpenAll(cmd.Context())
				return nil
			}
			opened, err := openContainer(cmd.Context(), e.opts, cmd.ErrOrStderr(), mode == storeTUI)
			if err != nil {
				return err
			}
			e.c = opened
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if e.c != nil && storeMode(cmd) != storeTUI {
				e.c.flushNotices(cmd.OutOrStdout())
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, e)
		},
	}

	root.PersistentFlags().StringVar(&e.opts.configPath, "config", model.DefaultConfigPath(), "Path to the config file")
	root.PersistentFlags().BoolVar(&e.opts.ephemeral, "ephemeral", false, "Keep everything in memory for this run")

	root.AddGroup(
		&cobra.Group{ID: groupTrack, Title: "Tracking Commands:"},
		&cobra.Group{ID: groupData, Title: "Data Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	for _, cmd := range []*cobra.Command{
		newTaskCommand(e),
		newDateCommand(e),
		newStudyCommand(e),
		newFocusCommand(e),
		newStatusCommand(e),
	} {
		cmd.GroupID = groupTrack
		root.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{
		newExportCommand(e),
		newImportCommand(e),
	} {
		cmd.GroupID = groupData
		root.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{
		newConfigCommand(e),
		newThemeCommand(e),
		newTUICommand(e),
	} {
		cmd.GroupID = groupSetup
		root.AddCommand(cmd)
	}

	closeFn := func() error {
		if preset || e.c == nil {
			return nil
		}
		return e.c.Close()
	}
	return root, closeFn
}

// Execute runs the root command against the configured store.
func Execute(ctx context.Context, version string) error {
	root, closeFn := NewRootCommand(nil, version)
	err := root.ExecuteContext(ctx)
	if cerr := closeFn(); err == nil {
		err = cerr
	}
	return err
}

// storeMode returns the nearest store annotation on cmd or its parents.
// The bare root command runs the terminal UI; help and completion need no
// store.
func storeMode(cmd *cobra.Command) string {
	if !cmd.HasParent() {
		return storeTUI
	}
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return storeNone
		}
		if mode, ok := c.Annotations[annotationStore]; ok {
			return mode
		}
	}
	return ""
}

// openContainer loads the config, sets up logging and opens the store it
// names. The terminal UI logs to a file; every other command logs to
// stderr.
func openContainer(ctx context.Context, opts rootOptions, stderr io.Writer, tui bool) (*Container, error) {
	cfg, err := model.LoadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.ephemeral {
		cfg.Storage.Driver = model.DriverMemory
	}

	storage := cfg.Storage
	if storage.Driver == model.DriverPostgres {
		dsn, err := credential.ResolveDSN(storage.DSN, nil)
		if err != nil {
			return nil, err
		}
		storage.DSN = dsn
	}

	level := logging.ParseLevel(cfg.Log.Level)
	logger := logging.New(stderr, level)
	var closers []io.Closer
	if tui {
		fileLogger, f, err := logging.OpenFile(logging.DefaultLogPath(), level)
		if err != nil {
			return nil, err
		}
		logger = fileLogger
		closers = append(closers, f)
	}

	kv, err := store.Open(ctx, storage)
	if err != nil {
		for _, c := range closers {
			_ = c.Close()
		}
		return nil, fmt.Errorf("opening %s store: %w", storage.Driver, err)
	}
	logger.Debug("store opened", "driver", storage.Driver)

	c := NewContainer(ctx, cfg, store.NewGateway(kv), clock.System{}, logger)
	c.closers = closers
	return c, nil
}

// ExitCode maps an error to a process exit status. Rejected input exits
// with 2.
func ExitCode(err error) int {
	var verr *model.ValidationError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &verr):
		return 2
	default:
		return 1
	}
}
