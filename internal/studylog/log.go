// Package studylog records hours studied per day and aggregates them by week.
package studylog

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/nhle/wellup/internal/clock"
	"github.com/nhle/wellup/internal/model"
)

// DayTotal is the hours logged on one day of a week.
type DayTotal struct {
	Date  clock.Date
	Hours float64
}

// Log holds at most one entry per calendar day, newest first.
type Log struct {
	entries []model.StudyLogEntry
	clock   clock.Clock
}

// NewLog returns a log over entries. Entries sharing a date are merged.
func NewLog(entries []model.StudyLogEntry, c clock.Clock) *Log {
	l := &Log{clock: c}
	for _, e := range entries {
		if e.Date.IsZero() || !validHours(e.Hours) {
			continue
		}
		if i := l.index(e.Date); i >= 0 {
			l.entries[i].Hours += e.Hours
			l.entries[i].Subject = e.Subject
			continue
		}
		l.entries = append(l.entries, e)
	}
	l.sort()
	return l
}

// LogHours adds hours on date. An existing entry for the same date gets the
// hours added and its subject replaced. An empty subject becomes
// model.DefaultSubject.
func (l *Log) LogHours(date clock.Date, hours float64, subject string) (model.StudyLogEntry, error) {
	if date.IsZero() {
		return model.StudyLogEntry{}, &model.ValidationError{Field: "date", Reason: "is required"}
	}
	if !validHours(hours) {
		return model.StudyLogEntry{}, &model.ValidationError{Field: "hours", Reason: fmt.Sprintf("must be a positive number, got %v", hours)}
	}
	subject = strings.TrimSpace(subject)
	if subject == "" {
		subject = model.DefaultSubject
	}

	if i := l.index(date); i >= 0 {
		l.entries[i].Hours += hours
		l.entries[i].Subject = subject
		return l.entries[i], nil
	}

	e := model.StudyLogEntry{
		ID:        uuid.New().String(),
		Date:      date,
		Hours:     hours,
		Subject:   subject,
		CreatedAt: l.clock.Now(),
	}
	l.entries = append(l.entries, e)
	l.sort()
	return e, nil
}

// Delete removes the entry with the given id and reports whether it existed.
func (l *Log) Delete(id string) bool {
	for i := range l.entries {
		if l.entries[i].ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Entries returns a copy of every entry, newest first.
func (l *Log) Entries() []model.StudyLogEntry {
	out := make([]model.StudyLogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// HoursOn returns the hours logged on d.
func (l *Log) HoursOn(d clock.Date) float64 {
	if i := l.index(d); i >= 0 {
		return l.entries[i].Hours
	}
	return 0
}

// WeekTotals returns Monday through Sunday of the week weekOffset weeks from
// the week containing today. Days without entries, including future weeks,
// are zero.
func (l *Log) WeekTotals(today clock.Date, weekOffset int) [7]DayTotal {
	var out [7]DayTotal
	for i, d := range clock.WeekDays(today, weekOffset) {
		out[i] = DayTotal{Date: d, Hours: l.HoursOn(d)}
	}
	return out
}

// StreakOfDaysLogged counts consecutive days with hours, walking back from
// today when today has hours, otherwise from the latest entry not after
// today. Entries after today are ignored.
func (l *Log) StreakOfDaysLogged(today clock.Date) int {
	var anchor *clock.Date
	for i := range l.entries {
		d := l.entries[i].Date
		if !d.After(today) {
			anchor = &d
			break
		}
	}
	if anchor == nil {
		return 0
	}

	streak := 0
	for d := *anchor; l.HoursOn(d) > 0; d = d.AddDays(-1) {
		streak++
	}
	return streak
}

// Filter returns the entries inside the window f ending today, newest first.
// The week window starts seven days ago and the month window on the same day
// of the previous month.
func (l *Log) Filter(f model.LogFilter, today clock.Date) []model.StudyLogEntry {
	var from clock.Date
	switch f {
	case model.LogFilterWeek:
		from = today.AddDays(-7)
	case model.LogFilterMonth:
		from = clock.NewDate(today.Year, today.Month-1, today.Day)
	default:
		return l.Entries()
	}
	var out []model.StudyLogEntry
	for _, e := range l.entries {
		if !e.Date.Before(from) {
			out = append(out, e)
		}
	}
	return out
}

func (l *Log) index(d clock.Date) int {
	for i := range l.entries {
		if l.entries[i].Date == d {
			return i
		}
	}
	return -1
}

func (l *Log) sort() {
	sort.SliceStable(l.entries, func(i, j int) bool {
		return l.entries[i].Date.After(l.entries[j].Date)
	})
}

func validHours(h float64) bool {
	return h > 0 && !math.IsInf(h, 0) && !math.IsNaN(h)
}
