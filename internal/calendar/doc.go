// Package calendar implements an approximate Tokyo Stock Exchange trading-day
// calendar and business-day date-range resolution.
//
// The holiday rule set is deliberately approximate: it covers weekends, the
// fixed national holidays, the year-end/New-Year closure and the Monday
// floating holidays, but not observed-holiday shifts or year-specific legal
// changes. Downstream row filtering depends on exact parity with these rules,
// so they must not be "corrected" against the real exchange calendar.
package calendar
