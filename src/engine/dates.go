package engine

import (
	"fmt"
	"strconv"
	"time"

	"investment-outlook/src/helpers"
)

const isoDate = "2006-01-02"

// -----------------------------------------------------------------------------

// parseISO parses an ISO YYYY-MM-DD date, tagging failures as invalid input.
func parseISO(field, value string) (time.Time, error) {
	t, err := time.Parse(isoDate, value)
	if err != nil {
		return time.Time{}, helpers.Errorf(helpers.KindInvalidInput,
			"invalid %s %q: expected YYYY-MM-DD", field, value)
	}
	return t, nil
}

// -----------------------------------------------------------------------------

// monthsBetween counts whole calendar months from start to end, ignoring the
// day of month. A partial month does not count as a payment period.
func monthsBetween(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}

// -----------------------------------------------------------------------------

// yearsBetween is the exact day-count difference in fractional years.
// Deliberately distinct from monthsBetween: appreciation compounds
// continuously while mortgage payments are discrete monthly events.
func yearsBetween(start, end time.Time) float64 {
	return end.Sub(start).Hours() / 24.0 / 365.25
}

// -----------------------------------------------------------------------------

// yearEnd returns December 31 of the given year as an ISO date.
func yearEnd(year int) string {
	return fmt.Sprintf("%d-12-31", year)
}

// -----------------------------------------------------------------------------

// yearOf extracts the calendar year of an ISO date. The date must already be
// validated.
func yearOf(date string) int {
	y, _ := strconv.Atoi(date[:4])
	return y
}

// -----------------------------------------------------------------------------

// minDate returns the earlier of two ISO dates.
func minDate(a, b string) string {
	if b < a {
		return b
	}
	return a
}
