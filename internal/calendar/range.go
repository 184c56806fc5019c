package calendar

import "time"

// DateRange is a pair of trading days bounding a quote query. The range
// (Start, End] contains exactly the requested number of trading days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// From returns the range start formatted for API query parameters.
func (r DateRange) From() string {
	return r.Start.Format(Layout)
}

// To returns the range end formatted for API query parameters.
func (r DateRange) To() string {
	return r.End.Format(Layout)
}

// ResolveRange converts "the last n trading days" into a concrete date range
// ending at the most recent trading day on or before today.
func ResolveRange(tradingDays int) DateRange {
	return resolveRangeFrom(time.Now(), tradingDays)
}

// resolveRangeFrom walks backward from now to the nearest trading day (the
// range end), then keeps walking, counting trading days, until tradingDays
// have been seen; that day is the range start. Large counts just iterate
// longer, there is no upper bound.
func resolveRangeFrom(now time.Time, tradingDays int) DateRange {
	cur := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for !IsTradingDay(cur) {
		cur = cur.AddDate(0, 0, -1)
	}
	end := cur

	for found := 0; found < tradingDays; {
		cur = cur.AddDate(0, 0, -1)
		if IsTradingDay(cur) {
			found++
		}
	}

	return DateRange{Start: cur, End: end}
}

// ParseDate parses a date field from an API row.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(Layout, s)
}
