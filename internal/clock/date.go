package clock

import (
	"fmt"
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// legacyLayouts are also accepted when reading stored dates.
var legacyLayouts = []string{"Mon Jan 02 2006"}

// Date is a calendar day with no time-of-day or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// NewDate returns the normalized date for y-m-d, so NewDate(2024, 1, 32) is Feb 1.
func NewDate(y int, m time.Month, d int) Date {
	return DateOf(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// ParseDate parses YYYY-MM-DD. An RFC 3339 timestamp is also accepted and
// reduced to its local calendar day, as is the "Wed May 01 2024" form.
func ParseDate(s string) (Date, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return DateOf(t), nil
	}
	for _, layout := range legacyLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: want YYYY-MM-DD", s)
	}
	return DateOf(t.Local()), nil
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// In returns midnight at the start of d in loc.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) utc() time.Time {
	return d.In(time.UTC)
}

// AddDays returns d shifted by n calendar days.
func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

// DaysSince returns the number of calendar days from o to d.
func (d Date) DaysSince(o Date) int {
	return int(d.utc().Sub(o.utc()).Hours() / 24)
}

// Compare returns -1, 0 or +1 as d is before, equal to or after o.
func (d Date) Compare(o Date) int {
	return d.utc().Compare(o.utc())
}

// Before reports whether d is strictly before o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is strictly after o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.utc().Weekday()
}

// WeekStart returns the Monday of the week containing d.
func (d Date) WeekStart() Date {
	back := (int(d.Weekday()) + 6) % 7
	return d.AddDays(-back)
}

// ISOWeek returns the ISO 8601 year and week number of d.
func (d Date) ISOWeek() (year, week int) {
	return d.utc().ISOWeek()
}

// MarshalText encodes d as YYYY-MM-DD.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes YYYY-MM-DD or an RFC 3339 timestamp. Empty input
// yields the zero Date.
func (d *Date) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// WeekDays returns Monday through Sunday of the week offset weeks away from
// the week containing today. Offset 0 is the current week, -1 the previous one.
func WeekDays(today Date, offset int) [7]Date {
	var days [7]Date
	start := today.WeekStart().AddDays(offset * 7)
	for i := range days {
		days[i] = start.AddDays(i)
	}
	return days
}

// DaysUntil returns the whole days from now until local midnight of d,
// rounded up. Dates in the past give zero or negative values.
func DaysUntil(now time.Time, d Date) int {
	diff := d.In(now.Location()).Sub(now)
	return int(math.Ceil(diff.Hours() / 24))
}

// Proximity buckets a date relative to now.
type Proximity int

const (
	Later Proximity = iota
	Overdue
	DueToday
	DueTomorrow
	DueThisWeek
)

// Classify buckets d by DaysUntil(now, d).
func Classify(now time.Time, d Date) Proximity {
	days := DaysUntil(now, d)
	switch {
	case days < 0:
		return Overdue
	case days == 0:
		return DueToday
	case days == 1:
		return DueTomorrow
	case days <= 7:
		return DueThisWeek
	default:
		return Later
	}
}

// Urgent reports whether d is at most two days away.
func Urgent(now time.Time, d Date) bool {
	return DaysUntil(now, d) <= 2
}
