package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/wellup/internal/clock"
	"github.com/nhle/wellup/internal/model"
	"github.com/nhle/wellup/internal/store"
)

func sampleBundle() Bundle {
	created := time.Date(2024, time.May, 1, 9, 30, 0, 0, time.UTC)
	deadline := clock.NewDate(2024, time.May, 6)
	last := clock.NewDate(2024, time.May, 1)
	return Bundle{
		Version:    BundleVersion,
		ExportedAt: created,
		Theme:      model.ThemeLight,
		Data: model.DataSnapshot{
			Tasks: []model.Task{
				{ID: "t1", Title: "Essay", Deadline: &deadline, Priority: model.PriorityMedium, CreatedAt: created, XPValue: 25},
				{ID: "t2", Title: "Read", Priority: model.PriorityLow, Completed: true, CreatedAt: created, XPValue: 10},
			},
			ImportantDates: []model.ImportantDate{{ID: "d1", Title: "Exam", Date: deadline, CreatedAt: created}},
			RewardState:    model.RewardState{Level: 2, XP: 35, XPNeeded: 150, TasksCompleted: 4},
			StreakState:    model.StreakState{Streak: 2, LastCompletionDate: &last},
		},
		Analytics: model.AnalyticsSnapshot{StudyLogs: []model.StudyLogEntry{
			{ID: "s1", Date: last, Hours: 3.5, Subject: "Physics", CreatedAt: created},
		}},
		Focus: model.FocusSnapshot{Stats: model.FocusStats{SessionsToday: 1, TotalMinutesToday: 25}},
	}
}

func TestWriteRead_RoundTripsEveryFormat(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatYAML, FormatTOML} {
		t.Run(string(f), func(t *testing.T) {
			in := sampleBundle()
			var buf bytes.Buffer
			require.NoError(t, Write(&buf, f, in))

			out, err := Read(&buf, f)
			require.NoError(t, err)
			assert.Equal(t, in, out)
		})
	}
}

func TestWrite_UsesCamelCaseKeys(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, sampleBundle()))

	out := buf.String()
	assert.Contains(t, out, "xpNeeded: 150")
	assert.Contains(t, out, "importantDates:")
	assert.Contains(t, out, "deadline: \"2024-05-06\"")
}

func TestWrite_TOMLKeepsIntegers(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatTOML, sampleBundle()))

	out := buf.String()
	assert.Contains(t, out, "xpNeeded = 150")
	assert.Contains(t, out, "hours = 3.5")
	assert.NotContains(t, out, "lastSessionDate")
}

func TestCollectRestore(t *testing.T) {
	ctx := context.Background()
	src := store.NewGateway(store.NewMemoryStore())
	in := sampleBundle()
	require.NoError(t, Restore(ctx, src, in))

	got, err := Collect(ctx, src, in.ExportedAt)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = FormatFromPath("/tmp/backup.toml")
	require.NoError(t, err)
	assert.Equal(t, FormatTOML, f)

	_, err = ParseFormat("xml")
	assert.ErrorIs(t, err, model.ErrValidation)
}
