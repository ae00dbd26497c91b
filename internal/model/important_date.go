package model

import (
	"time"

	"github.com/nhle/wellup/internal/clock"
)

// ImportantDate is a dated reminder shown on the scheduling screen,
// independent of tasks.
type ImportantDate struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Date      clock.Date `json:"date"`
	CreatedAt time.Time  `json:"createdAt"`
}
