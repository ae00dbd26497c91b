package ui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/nhle/wellup/internal/clock"
)

// ValidateRequired returns a huh validator rejecting blank input.
func ValidateRequired(fieldName string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
}

// ValidateDate accepts YYYY-MM-DD.
func ValidateDate(s string) error {
	if _, err := clock.ParseDate(strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("invalid date format, use YYYY-MM-DD")
	}
	return nil
}

// ValidateOptionalDate accepts blank input or YYYY-MM-DD.
func ValidateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return ValidateDate(s)
}

// ParseHours parses a positive, finite number of hours.
func ParseHours(s string) (float64, error) {
	h, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		return 0, fmt.Errorf("hours must be a number greater than 0")
	}
	return h, nil
}

// ValidateHours is the huh validator form of ParseHours.
func ValidateHours(s string) error {
	_, err := ParseHours(s)
	return err
}

// FormWidth clamps a huh form to a readable width for the content area.
func FormWidth(width int) int {
	w := width - 4
	if w < 40 {
		w = 40
	}
	if w > 100 {
		w = 100
	}
	return w
}

// FormHeight leaves room for the form title.
func FormHeight(height int) int {
	h := height - 4
	if h < 10 {
		h = 10
	}
	return h
}
