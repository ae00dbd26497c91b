package tasks

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/nhle/wellup/internal/clock"
	"github.com/nhle/wellup/internal/model"
)

// Calendar keeps important dates sorted by day.
type Calendar struct {
	dates []model.ImportantDate
	clock clock.Clock
}

// NewCalendar returns a calendar over dates. The slice is copied and sorted.
func NewCalendar(dates []model.ImportantDate, c clock.Clock) *Calendar {
	own := make([]model.ImportantDate, len(dates))
	copy(own, dates)
	sort.SliceStable(own, func(i, j int) bool {
		return own[i].Date.Before(own[j].Date)
	})
	return &Calendar{dates: own, clock: c}
}

// Add records a new important date. Dates on the same day keep insertion order.
func (c *Calendar) Add(title string, date clock.Date) (model.ImportantDate, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.ImportantDate{}, &model.ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if date.IsZero() {
		return model.ImportantDate{}, &model.ValidationError{Field: "date", Reason: "is required"}
	}

	d := model.ImportantDate{
		ID:        uuid.New().String(),
		Title:     title,
		Date:      date,
		CreatedAt: c.clock.Now(),
	}
	i := sort.Search(len(c.dates), func(i int) bool {
		return c.dates[i].Date.After(date)
	})
	c.dates = append(c.dates, model.ImportantDate{})
	copy(c.dates[i+1:], c.dates[i:])
	c.dates[i] = d
	return d, nil
}

// Delete removes the date with the given id and reports whether it existed.
func (c *Calendar) Delete(id string) bool {
	for i := range c.dates {
		if c.dates[i].ID == id {
			c.dates = append(c.dates[:i], c.dates[i+1:]...)
			return true
		}
	}
	return false
}

// Dates returns a copy of every date in ascending order.
func (c *Calendar) Dates() []model.ImportantDate {
	out := make([]model.ImportantDate, len(c.dates))
	copy(out, c.dates)
	return out
}

// Upcoming returns the dates between today and today+within days inclusive.
func (c *Calendar) Upcoming(today clock.Date, within int) []model.ImportantDate {
	last := today.AddDays(within)
	var out []model.ImportantDate
	for _, d := range c.dates {
		if d.Date.Before(today) || d.Date.After(last) {
			continue
		}
		out = append(out, d)
	}
	return out
}
