package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

const shortIDLen = 8

var (
	// ErrNoMatch is returned when no record has the given id or prefix.
	ErrNoMatch = errors.New("no match")
	// ErrAmbiguous is returned when a prefix matches more than one record.
	ErrAmbiguous = errors.New("ambiguous id")
)

// shortID returns the printed form of an id.
func shortID(id string) string {
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}
	return id
}

// matchID resolves an id or a unique id prefix against ids.
func matchID(ids []string, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", fmt.Errorf("empty id: %w", ErrNoMatch)
	}
	var found []string
	for _, id := range ids {
		if id == query {
			return id, nil
		}
		if strings.HasPrefix(id, query) {
			found = append(found, id)
		}
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("%q: %w", query, ErrNoMatch)
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("%q matches %d records: %w", query, len(found), ErrAmbiguous)
	}
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func formatHours(h float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", h), "0"), ".") + "h"
}
