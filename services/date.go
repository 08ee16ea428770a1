package services

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate parses a date string in strict YYYY-MM-DD format
func ParseDate(dateStr string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: expected YYYY-MM-DD")
	}
	return parsed, nil
}

// ParseOptionalDate parses an optional date field. A missing or malformed
// value yields nil rather than an error: optional dates that fail to parse
// are treated as absent.
func ParseOptionalDate(dateStr *string) *time.Time {
	if dateStr == nil {
		return nil
	}
	parsed, err := time.Parse(dateLayout, *dateStr)
	if err != nil {
		return nil
	}
	return &parsed
}

// FormatDate renders a date as an ISO calendar string
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatDatePtr renders an optional date, keeping nil as nil so it marshals
// to JSON null
func FormatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
