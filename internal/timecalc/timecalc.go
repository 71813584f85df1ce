package timecalc

import (
	"fmt"
	"time"

	"github.com/Tiliavir/temps-vecu/internal/model"
)

// ISOLayout is the calendar date format used as entry key.
const ISOLayout = "2006-01-02"

// ISO formats t as YYYY-MM-DD in its own location.
func ISO(t time.Time) string {
	return t.Format(ISOLayout)
}

// ParseISO parses a YYYY-MM-DD date at local midnight of loc.
func ParseISO(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(ISOLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %v", model.ErrInvalidDate, s, err)
	}
	return t, nil
}

// StartOfDay returns 00:00:00 of the same day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfMonth returns midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// AddDays moves t by n calendar days, staying at local midnight across DST changes.
func AddDays(t time.Time, n int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+n, 0, 0, 0, 0, t.Location())
}

// WeekdayIndex maps a date to Monday=0 … Sunday=6.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// FormatMinutes formats minutes like "1h 40m", "2h" or "45m".
func FormatMinutes(mins int) string {
	h := mins / 60
	m := mins % 60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatBucket is FormatMinutes except that zero reads "0h".
func FormatBucket(mins int) string {
	if mins == 0 {
		return "0h"
	}
	return FormatMinutes(mins)
}

// FormatDateEU turns "2024-01-10" into "10/01".
func FormatDateEU(iso string) string {
	if len(iso) != len(ISOLayout) {
		return iso
	}
	return iso[8:10] + "/" + iso[5:7]
}
