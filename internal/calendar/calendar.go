package calendar

import "time"

// Layout is the date format used by the API for range parameters and the
// Date field of returned rows.
const Layout = "2006-01-02"

type monthDay struct {
	month time.Month
	day   int
}

// Fixed-date national holidays, every year.
var fixedHolidays = map[monthDay]bool{
	{time.January, 1}:   true, // New Year's Day
	{time.February, 11}: true, // National Foundation Day
	{time.April, 29}:    true, // Showa Day
	{time.May, 3}:       true, // Constitution Memorial Day
	{time.May, 4}:       true, // Greenery Day
	{time.May, 5}:       true, // Children's Day
	{time.August, 11}:   true, // Mountain Day
	{time.November, 3}:  true, // Culture Day
	{time.November, 23}: true, // Labor Thanksgiving Day
	{time.December, 23}: true, // Emperor's Birthday
}

// Monday floating holidays: the Nth Monday of a month.
var mondayHolidays = []struct {
	month time.Month
	nth   int
}{
	{time.January, 2},   // Coming of Age Day
	{time.July, 3},      // Marine Day
	{time.September, 3}, // Respect for the Aged Day
	{time.October, 2},   // Sports Day
}

// IsTradingDay reports whether the exchange is open on the given date.
// Only the year, month and day of d are considered.
func IsTradingDay(d time.Time) bool {
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}

	month, day := d.Month(), d.Day()

	if fixedHolidays[monthDay{month, day}] {
		return false
	}

	// Year-end/New-Year closure. Jan 1 and Dec 23 are also fixed holidays;
	// the blackout stands on its own regardless.
	if (month == time.December && day >= 29) || (month == time.January && day <= 3) {
		return false
	}

	for _, h := range mondayHolidays {
		if month == h.month && day == nthMonday(d.Year(), h.month, h.nth) {
			return false
		}
	}

	return true
}

// nthMonday returns the day-of-month of the nth Monday of the given month.
// The first Monday falls on day 8-w where w is the ISO-style weekday of the
// 1st (Monday=0), wrapped back into 1..7.
func nthMonday(year int, month time.Month, nth int) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	w := (int(first.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6

	day := 8 - w
	if day > 7 {
		day -= 7
	}
	return day + 7*(nth-1)
}
