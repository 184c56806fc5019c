package calendar

import (
	"testing"
	"time"
)

// tradingDaysAfterStart counts trading days in (start, end].
func tradingDaysAfterStart(r DateRange) int {
	count := 0
	for d := r.Start.AddDate(0, 0, 1); !d.After(r.End); d = d.AddDate(0, 0, 1) {
		if IsTradingDay(d) {
			count++
		}
	}
	return count
}

func TestResolveRangeFrom(t *testing.T) {
	now := date(2024, time.June, 14) // a Friday

	for _, n := range []int{1, 5, 30, 250} {
		r := resolveRangeFrom(now, n)

		if r.Start.After(r.End) {
			t.Errorf("n=%d: Start %s after End %s", n, r.From(), r.To())
		}
		if !IsTradingDay(r.Start) {
			t.Errorf("n=%d: Start %s is not a trading day", n, r.From())
		}
		if !IsTradingDay(r.End) {
			t.Errorf("n=%d: End %s is not a trading day", n, r.To())
		}
		if got := tradingDaysAfterStart(r); got != n {
			t.Errorf("n=%d: trading days in (start, end] = %d", n, got)
		}
	}
}

func TestResolveRangeFrom_NonTradingNow(t *testing.T) {
	// Saturday: the end must land on the preceding Friday.
	r := resolveRangeFrom(date(2024, time.June, 15), 5)

	want := date(2024, time.June, 14)
	if !r.End.Equal(want) {
		t.Errorf("End = %s, want %s", r.To(), want.Format(Layout))
	}
	if got := tradingDaysAfterStart(r); got != 5 {
		t.Errorf("trading days in (start, end] = %d, want 5", got)
	}
}

func TestResolveRangeFrom_AcrossYearEnd(t *testing.T) {
	// Jan 2: inside the New Year closure, the walk must clear both the
	// closure and the surrounding weekend.
	r := resolveRangeFrom(date(2025, time.January, 2), 5)

	if !IsTradingDay(r.End) {
		t.Errorf("End %s is not a trading day", r.To())
	}
	if r.End.Month() != time.December || r.End.Year() != 2024 {
		t.Errorf("End = %s, want a December 2024 trading day", r.To())
	}
	if got := tradingDaysAfterStart(r); got != 5 {
		t.Errorf("trading days in (start, end] = %d, want 5", got)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-08")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.January || d.Day() != 8 {
		t.Errorf("ParseDate = %v", d)
	}

	if _, err := ParseDate("20240108"); err == nil {
		t.Error("ParseDate accepted a malformed date")
	}
}
