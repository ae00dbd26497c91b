package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/wellup/internal/app"
	"github.com/nhle/wellup/internal/clock"
	"github.com/nhle/wellup/internal/credential"
	"github.com/nhle/wellup/internal/export"
	"github.com/nhle/wellup/internal/model"
	"github.com/nhle/wellup/internal/store"
)

// newTestContainer wires the controllers over an in-memory store with the
// clock fixed at Wednesday 2024-05-01 09:00 UTC.
func newTestContainer(t *testing.T) *Container {
	t.Helper()
	c := clock.NewManual(time.Date(2024, time.May, 1, 9, 0, 0, 0, time.UTC))
	ctr := NewContainer(context.Background(), nil, store.NewGateway(store.NewMemoryStore()), c, nil)
	t.Cleanup(func() { _ = ctr.Close() })
	return ctr
}

func run(t *testing.T, c *Container, args ...string) (string, error) {
	t.Helper()
	root, _ := NewRootCommand(c, "test")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func mustRun(t *testing.T, c *Container, args ...string) string {
	t.Helper()
	out, err := run(t, c, args...)
	require.NoError(t, err, out)
	return out
}

func onlyTaskID(t *testing.T, c *Container) string {
	t.Helper()
	tasks := c.Screens.Tasks.Snapshot().Tasks
	require.Len(t, tasks, 1)
	return tasks[0].ID
}

// =============================================================================
// Task commands
// =============================================================================

func TestTaskCommands_AddCompleteReopen(t *testing.T) {
	c := newTestContainer(t)

	out := mustRun(t, c, "task", "add", "Finish", "lab", "report", "--priority", "high")
	assert.Contains(t, out, "(+30 XP on completion)")
	assert.Contains(t, out, "Task added successfully!")

	id := onlyTaskID(t, c)
	assert.Equal(t, "Finish lab report", c.Screens.Tasks.Snapshot().Tasks[0].Title)

	out = mustRun(t, c, "task", "toggle", shortID(id))
	assert.Contains(t, out, "+30 XP! Great work!")

	out = mustRun(t, c, "status")
	assert.Contains(t, out, "Level 1  30/100 XP")
	assert.Contains(t, out, "Streak: 1 days")
	assert.Contains(t, out, "Tasks: 1/1 completed")

	out = mustRun(t, c, "task", "toggle", id)
	assert.Contains(t, out, `Reopened "Finish lab report" (-30 XP)`)
	assert.Equal(t, 0, c.Screens.Tasks.Overview().Reward.XP)
}

func TestTaskCommands_ListFilters(t *testing.T) {
	c := newTestContainer(t)
	mustRun(t, c, "task", "add", "Read chapter 4", "-p", "low", "--deadline", "2024-05-02")
	mustRun(t, c, "task", "add", "Write essay", "-p", "high")

	out := mustRun(t, c, "task", "list")
	assert.Contains(t, out, "Read chapter 4")
	assert.Contains(t, out, "due tomorrow")
	assert.Contains(t, out, "Write essay")

	out = mustRun(t, c, "task", "list", "--filter", "high")
	assert.NotContains(t, out, "Read chapter 4")
	assert.Contains(t, out, "Write essay")

	out = mustRun(t, c, "task", "ls", "-f", "completed")
	assert.Contains(t, out, "No tasks.")
}

func TestTaskCommands_RejectInput(t *testing.T) {
	c := newTestContainer(t)

	_, err := run(t, c, "task", "add", "Study", "--priority", "urgent")
	var verr *model.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "priority", verr.Field)
	assert.Equal(t, 2, ExitCode(err))

	_, err = run(t, c, "task", "add", "Study", "--deadline", "next week")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "deadline", verr.Field)

	_, err = run(t, c, "task", "add", "   ")
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, c.Screens.Tasks.Snapshot().Tasks)
}

func TestTaskCommands_UnknownID(t *testing.T) {
	c := newTestContainer(t)
	mustRun(t, c, "task", "add", "Study")

	_, err := run(t, c, "task", "delete", "zzzz")
	assert.ErrorIs(t, err, ErrNoMatch)
	assert.Equal(t, 1, ExitCode(err))
	assert.Len(t, c.Screens.Tasks.Snapshot().Tasks, 1)

	mustRun(t, c, "task", "rm", onlyTaskID(t, c))
	assert.Empty(t, c.Screens.Tasks.Snapshot().Tasks)
}

func TestMatchID(t *testing.T) {
	ids := []string{"abc123", "abd456", "abc"}

	tests := []struct {
		name    string
		query   string
		want    string
		wantErr error
	}{
		{name: "exact match wins over prefix", query: "abc", want: "abc"},
		{name: "unique prefix", query: "abd", want: "abd456"},
		{name: "ambiguous prefix", query: "ab", wantErr: ErrAmbiguous},
		{name: "no match", query: "x", wantErr: ErrNoMatch},
		{name: "empty", query: " ", wantErr: ErrNoMatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := matchID(ids, tt.query)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// =============================================================================
// Study and date commands
// =============================================================================

func TestStudyCommands(t *testing.T) {
	c := newTestContainer(t)

	out := mustRun(t, c, "study", "add", "2.5", "Biology")
	assert.Contains(t, out, "2024-05-01: 2.5h of Biology")
	assert.Contains(t, out, "Study hours logged successfully!")

	out = mustRun(t, c, "study", "add", "1", "--date", "2024-04-30")
	assert.Contains(t, out, "1h of "+model.DefaultSubject)

	out = mustRun(t, c, "study", "add", "2", "Biology")
	assert.Contains(t, out, "Updated study hours for this date!")

	out = mustRun(t, c, "study", "list")
	assert.Contains(t, out, "2024-05-01")
	assert.Contains(t, out, "2024-04-30")

	out = mustRun(t, c, "study", "summary")
	assert.Contains(t, out, "3h")
	assert.Contains(t, out, "2/7")
	assert.Contains(t, out, "2 days")

	_, err := run(t, c, "study", "add", "0")
	var verr *model.ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = run(t, c, "study", "list", "--filter", "year")
	assert.ErrorAs(t, err, &verr)
}

func TestStudyWeek(t *testing.T) {
	c := newTestContainer(t)
	mustRun(t, c, "study", "add", "3", "--date", "2024-04-24")

	out := mustRun(t, c, "study", "week")
	assert.Contains(t, out, "This Week")

	out = mustRun(t, c, "study", "week", "--back", "1")
	assert.Contains(t, out, "Last Week")
	assert.Contains(t, out, "3")

	out = mustRun(t, c, "study", "week")
	assert.Contains(t, out, "This Week")
}

func TestDateCommands(t *testing.T) {
	c := newTestContainer(t)

	out := mustRun(t, c, "date", "add", "2024-05-03", "Chemistry", "final")
	assert.Contains(t, out, "on 2024-05-03")
	mustRun(t, c, "date", "add", "2024-07-01", "Summer break")
	mustRun(t, c, "task", "add", "Revise notes", "--deadline", "2024-05-02")

	out = mustRun(t, c, "date", "list")
	assert.Contains(t, out, "Chemistry final")
	assert.Contains(t, out, "Summer break")
	assert.Contains(t, out, "Task deadlines:")
	assert.Contains(t, out, "Revise notes")

	out = mustRun(t, c, "date", "list", "--upcoming")
	assert.Contains(t, out, "Chemistry final")
	assert.NotContains(t, out, "Summer break")

	dates := c.Screens.Schedule.Dates()
	require.Len(t, dates, 2)
	mustRun(t, c, "date", "delete", dates[0].ID)
	assert.Len(t, c.Screens.Schedule.Dates(), 1)

	// Both screens write the shared snapshot, so tasks survive date edits.
	c.Screens.Tasks.Open(context.Background())
	assert.Len(t, c.Screens.Tasks.Snapshot().Tasks, 1)
}

func TestRelativeDays(t *testing.T) {
	assert.Equal(t, "today", relativeDays(0))
	assert.Equal(t, "tomorrow", relativeDays(1))
	assert.Equal(t, "5d", relativeDays(5))
	assert.Equal(t, "2d ago", relativeDays(-2))
}

// =============================================================================
// Focus, theme, export and import
// =============================================================================

func TestFocusStats(t *testing.T) {
	c := newTestContainer(t)
	out := mustRun(t, c, "focus", "stats")
	assert.Contains(t, out, "Sessions today:")
	assert.Contains(t, out, "0h 0m")
}

func TestThemeCommands(t *testing.T) {
	c := newTestContainer(t)

	out := mustRun(t, c, "theme")
	assert.Equal(t, "dark\n", out)

	out = mustRun(t, c, "theme", "toggle")
	assert.Contains(t, out, "Theme set to light")

	theme, err := c.Gateway.LoadTheme(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.ThemeLight, theme)
}

func TestExportImport(t *testing.T) {
	src := newTestContainer(t)
	mustRun(t, src, "task", "add", "Lab report", "-p", "high")
	mustRun(t, src, "study", "add", "2", "Physics")
	mustRun(t, src, "date", "add", "2024-06-01", "Exam")

	out := mustRun(t, src, "export")
	b, err := export.Read(strings.NewReader(out), export.FormatJSON)
	require.NoError(t, err)
	assert.Len(t, b.Data.Tasks, 1)
	assert.Len(t, b.Analytics.StudyLogs, 1)

	path := filepath.Join(t.TempDir(), "backup.toml")
	out = mustRun(t, src, "export", "--output", path)
	assert.Contains(t, out, "Exported 1 tasks, 1 dates and 1 study logs")

	dst := newTestContainer(t)
	out = mustRun(t, dst, "import", path)
	assert.Contains(t, out, "Imported 1 tasks, 1 dates and 1 study logs")
	assert.Equal(t, "Lab report", dst.Screens.Tasks.Snapshot().Tasks[0].Title)
	assert.Len(t, dst.Screens.Schedule.Dates(), 1)
	assert.Equal(t, 2.0, dst.Screens.Analytics.Summary().TodayHours)

	_, err = run(t, dst, "export", "--format", "xml")
	var verr *model.ValidationError
	assert.ErrorAs(t, err, &verr)
}

// =============================================================================
// Config, TUI and wiring
// =============================================================================

func TestConfigCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wellup", "config.yaml")

	out := mustRun(t, nil, "--config", path, "config", "init")
	assert.Contains(t, out, "Wrote "+path)
	_, err := os.Stat(path)
	require.NoError(t, err)

	_, err = run(t, nil, "--config", path, "config", "init")
	assert.ErrorContains(t, err, "already exists")
	mustRun(t, nil, "--config", path, "config", "init", "--force")

	out = mustRun(t, nil, "--config", path, "config", "show")
	assert.Contains(t, out, "driver: sqlite")
	assert.Contains(t, out, "work_minutes: 25")

	out = mustRun(t, nil, "--config", path, "config", "path")
	assert.Equal(t, path+"\n", out)
}

func TestConfigDSN(t *testing.T) {
	saved := map[string]string{}
	oldSet, oldDelete := setSecret, deleteSecret
	setSecret = func(key, value string) error {
		saved[key] = value
		return nil
	}
	deleteSecret = func(key string) error {
		if _, ok := saved[key]; !ok {
			return credential.ErrNotFound
		}
		delete(saved, key)
		return nil
	}
	t.Cleanup(func() { setSecret, deleteSecret = oldSet, oldDelete })

	mustRun(t, nil, "config", "dsn", "set", "postgres://localhost/wellup")
	assert.Equal(t, "postgres://localhost/wellup", saved[credential.PostgresDSNKey])

	mustRun(t, nil, "config", "dsn", "clear")
	assert.Empty(t, saved)
	mustRun(t, nil, "config", "dsn", "clear")

	deleteSecret = func(string) error { return errors.New("keyring locked") }
	_, err := run(t, nil, "config", "dsn", "clear")
	assert.ErrorContains(t, err, "keyring locked")
}

func TestTUICommand(t *testing.T) {
	var got tea.Model
	old := runProgram
	runProgram = func(_ *cobra.Command, m tea.Model) error {
		got = m
		return nil
	}
	t.Cleanup(func() { runProgram = old })

	c := newTestContainer(t)
	mustRun(t, c)
	assert.IsType(t, app.Model{}, got)

	got = nil
	mustRun(t, c, "tui")
	assert.IsType(t, app.Model{}, got)
}

func TestStoreMode(t *testing.T) {
	root, _ := NewRootCommand(nil, "test")
	find := func(args ...string) *cobra.Command {
		cmd, _, err := root.Find(args)
		require.NoError(t, err)
		return cmd
	}

	assert.Equal(t, storeTUI, storeMode(root))
	assert.Equal(t, storeTUI, storeMode(find("tui")))
	assert.Equal(t, "", storeMode(find("task", "add")))
	assert.Equal(t, storeNone, storeMode(find("config", "init")))
	assert.Equal(t, storeNone, storeMode(find("config", "dsn", "set")))
}

func TestOpenContainer_Ephemeral(t *testing.T) {
	opts := rootOptions{
		configPath: filepath.Join(t.TempDir(), "missing.yaml"),
		ephemeral:  true,
	}
	var stderr bytes.Buffer
	c, err := openContainer(context.Background(), opts, &stderr, false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	assert.Equal(t, model.DriverMemory, c.Config.Storage.Driver)
	_, err = c.Screens.Tasks.AddTask(context.Background(), "Read", nil, model.PriorityLow)
	require.NoError(t, err)

	data, err := c.Gateway.LoadData(context.Background())
	require.NoError(t, err)
	assert.Len(t, data.Tasks, 1)
}

func TestOpenContainer_SQLite(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := model.DefaultAppConfig()
	cfg.Storage.Path = filepath.Join(dir, "data", "wellup.db")
	require.NoError(t, model.SaveConfig(cfgPath, cfg))

	opts := rootOptions{configPath: cfgPath}
	c, err := openContainer(context.Background(), opts, &bytes.Buffer{}, false)
	require.NoError(t, err)
	_, err = c.Screens.Analytics.LogHours(context.Background(), clock.Today(c.Clock), 1.5, "Math")
	require.NoError(t, err)
	require.NoError(t, c.Close())

	c, err = openContainer(context.Background(), opts, &bytes.Buffer{}, false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	assert.Len(t, c.Screens.Analytics.Snapshot().StudyLogs, 1)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 2, ExitCode(&model.ValidationError{Field: "title", Reason: "empty"}))
	assert.Equal(t, 1, ExitCode(errors.New("boom")))
}
