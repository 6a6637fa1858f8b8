// Package datetime provides date and time utility functions.
package datetime

import (
	"math"
	"time"

	"github.com/finchapp/finch/pkg/constants"
)

const (
	// DateLayout is the format expected for deadlines and due dates and is
	// also the output date format.
	DateLayout = constants.DateLayout

	// MonthLayout is the format used for month-level schedule output.
	MonthLayout = constants.MonthLayout
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseDate parses a day-level date string.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(DateLayout, dateStr)
}

// DaysUntil returns the number of whole days from now until the deadline,
// rounding partial days up and flooring at zero for past deadlines.
func DaysUntil(now, deadline time.Time) int {
	days := math.Ceil(deadline.Sub(now).Hours() / 24)
	if days < 0 {
		return 0
	}
	return int(days)
}

// AddMonths returns the date offset by the given number of calendar months.
func AddMonths(t time.Time, months int) time.Time {
	return t.AddDate(0, months, 0)
}

// OffsetDate returns the string-formatted date offset by the given number of
// months relative to the given date.
func OffsetDate(date, layout string, months int) (string, error) {
	t, err := time.Parse(layout, date)
	if err != nil {
		return date, err
	}
	return t.AddDate(0, months, 0).Format(layout), nil
}

// DateBeforeDate returns true if firstDate is strictly before secondDate.
func DateBeforeDate(firstDate string, secondDate string) (bool, error) {
	firstDateT, err := time.Parse(DateLayout, firstDate)
	if err != nil {
		return false, err
	}
	secondDateT, err := time.Parse(DateLayout, secondDate)
	if err != nil {
		return false, err
	}
	return firstDateT.Before(secondDateT), nil
}
