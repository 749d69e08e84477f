// Package dateutils parses the dates found in Brazilian statements and the
// YYYY-MM period names used to label a closing.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Date layouts
const (
	DateLayoutBR      = "02/01/2006"
	DateLayoutBRShort = "02/01/06"
	DateLayoutISO     = "2006-01-02"
	DateLayoutFull    = "2006-01-02 15:04:05"
	PeriodLayout      = "2006-01"
)

// CommonFormats is tried in order by ParseDate.
var CommonFormats = []string{
	DateLayoutBR,
	DateLayoutISO,
	DateLayoutFull,
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02-01-2006",
	"02.01.2006",
	DateLayoutBRShort,
	"2/1/2006",
}

var periodFormats = []string{
	PeriodLayout,
	"01/2006",
	"2006/01",
	"200601",
}

var whitespace = regexp.MustCompile(`\s+`)

// CleanDateString trims the value and collapses inner whitespace.
func CleanDateString(dateStr string) string {
	return whitespace.ReplaceAllString(strings.TrimSpace(dateStr), " ")
}

// ParseDate parses dateStr with the first matching layout of CommonFormats.
func ParseDate(dateStr string) (time.Time, error) {
	clean := CleanDateString(dateStr)
	if clean == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range CommonFormats {
		if t, err := time.Parse(layout, clean); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// ParsePeriod parses a month reference such as "2025-02" or "02/2025" and
// returns the first day of that month.
func ParsePeriod(period string) (time.Time, error) {
	clean := CleanDateString(period)
	for _, layout := range periodFormats {
		if t, err := time.Parse(layout, clean); err == nil {
			return StartOfMonth(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid period %q, expected YYYY-MM", period)
}

// FormatPeriod renders the canonical YYYY-MM name of date's month.
func FormatPeriod(date time.Time) string {
	return date.Format(PeriodLayout)
}

// CurrentPeriod returns the period containing now.
func CurrentPeriod(now time.Time) string {
	return FormatPeriod(now)
}

// StartOfMonth returns the first day of the month at midnight.
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// EndOfMonth returns the last day of the month at midnight.
func EndOfMonth(date time.Time) time.Time {
	return StartOfMonth(date).AddDate(0, 1, -1)
}

// InPeriod reports whether date falls in the month starting at period.
func InPeriod(date, period time.Time) bool {
	start := StartOfMonth(period)
	return !date.Before(start) && date.Before(start.AddDate(0, 1, 0))
}
