// Package gsc implements the Search Console query pipeline: date range and
// dimension resolution, the Search Analytics client, and result formatting.
package gsc

import "time"

// Named date range selections offered by the dashboard.
const (
	RangeLast7    = "Last 7 Days"
	RangeLast30   = "Last 30 Days"
	RangeLast3Mo  = "Last 3 Months"
	RangeLast6Mo  = "Last 6 Months"
	RangeLast12Mo = "Last 12 Months"
	RangeLast16Mo = "Last 16 Months"
	RangeCustom   = "Custom Range"
)

// DateRangeOptions lists the selections in menu order.
var DateRangeOptions = []string{
	RangeLast7,
	RangeLast30,
	RangeLast3Mo,
	RangeLast6Mo,
	RangeLast12Mo,
	RangeLast16Mo,
	RangeCustom,
}

// rangeDays maps a named selection to its trailing-window length. 16 months
// is the Search Console data retention limit.
var rangeDays = map[string]int{
	RangeLast7:    7,
	RangeLast30:   30,
	RangeLast3Mo:  90,
	RangeLast6Mo:  180,
	RangeLast12Mo: 365,
	RangeLast16Mo: 480,
}

// DateRange is a concrete start/end date pair, end inclusive.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ResolveDateRange maps a range selection to concrete bounds relative to
// today. Named selections yield a fixed trailing window ending today. A
// custom selection returns the supplied bounds unmodified; an inverted
// custom range is deliberately passed through, the reporting API rejects it
// itself. If either custom bound is zero the 7-day default applies. An
// unknown selection collapses to today..today.
func ResolveDateRange(selection string, customStart, customEnd, today time.Time) DateRange {
	if selection == RangeCustom {
		if !customStart.IsZero() && !customEnd.IsZero() {
			return DateRange{Start: customStart, End: customEnd}
		}
		return DateRange{Start: today.AddDate(0, 0, -7), End: today}
	}
	return DateRange{Start: today.AddDate(0, 0, -rangeDays[selection]), End: today}
}

// apiDate is the wire format the Search Analytics API expects.
const apiDate = "2006-01-02"

// StartString returns the start bound in API wire format.
func (r DateRange) StartString() string { return r.Start.Format(apiDate) }

// EndString returns the end bound in API wire format.
func (r DateRange) EndString() string { return r.End.Format(apiDate) }
