package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/nhle/wellup/internal/clock"
)

// DefaultSubject is used when a study entry is logged without a subject.
const DefaultSubject = "General Study"

// StudyLogEntry holds the hours studied on one day.
type StudyLogEntry struct {
	ID        string     `json:"id"`
	Date      clock.Date `json:"date"`
	Hours     float64    `json:"hours"`
	Subject   string     `json:"subject"`
	CreatedAt time.Time  `json:"createdAt"`
}

// LogFilter selects a time window over study entries.
type LogFilter string

const (
	LogFilterAll   LogFilter = "all"
	LogFilterWeek  LogFilter = "week"
	LogFilterMonth LogFilter = "month"
)

// ParseLogFilter parses a window name. Empty input means LogFilterAll.
func ParseLogFilter(input string) (LogFilter, error) {
	switch f := LogFilter(strings.ToLower(strings.TrimSpace(input))); f {
	case "":
		return LogFilterAll, nil
	case LogFilterAll, LogFilterWeek, LogFilterMonth:
		return f, nil
	default:
		return "", &ValidationError{Field: "filter", Reason: fmt.Sprintf("unknown filter %q", input)}
	}
}
