package core

import (
	"strings"
	"time"
)

// CleanString trims all leading and trailing whitespace in `s` and optionally lowers it.
func CleanString(s string, lower ...bool) string {
	s = strings.TrimSpace(s)
	if len(lower) > 0 && lower[0] {
		return strings.ToLower(s)
	}
	return s
}

// DateFormat is the wire format of all calendar-date fields.
const DateFormat = "2006-01-02"

// Today returns the current UTC date in DateFormat.
func Today() string {
	return time.Now().UTC().Format(DateFormat)
}
