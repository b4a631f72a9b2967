// Package sequence derives the next human-readable entity identifier
// from the greatest existing one: a fixed textual prefix plus a
// zero-padded incrementing number (GUEST0001, ROOM001, ...).
//
// Ordering by the identifier string is only safe while every generated
// identifier shares the same prefix and digit width. There is no
// collision handling: two concurrent creators can read the same last
// identifier, and the unique constraint rejects the second insert.
package sequence

import (
	"fmt"
	"lodge/shared/failure"
	"strconv"
	"strings"
)

const (
	GuestPrefix   = "GUEST"
	RoomPrefix    = "ROOM"
	ServicePrefix = "SERVICE"
	StaffPrefix   = "STAFF"

	DefaultWidth = 4
	RoomWidth    = 3
)

// First returns the starting identifier for an empty table.
func First(prefix string, width int) string {
	return fmt.Sprintf("%s%0*d", prefix, width, 1)
}

// Next returns the identifier following lastID. An empty lastID yields
// the prefix's starting value.
func Next(prefix string, width int, lastID string) (string, error) {
	if lastID == "" {
		return First(prefix, width), nil
	}

	suffix := strings.TrimPrefix(lastID, prefix)
	if suffix == lastID {
		return "", failure.InternalError(fmt.Errorf("identifier %q does not carry prefix %q", lastID, prefix)) //nolint:wrapcheck
	}

	number, err := strconv.Atoi(suffix)
	if err != nil {
		return "", fmt.Errorf("parsing numeric suffix of %q: %w", lastID, err)
	}

	return fmt.Sprintf("%s%0*d", prefix, width, number+1), nil
}
