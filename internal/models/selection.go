package models

import "time"

// Selection holds the per-session query parameters. One instance exists per
// signed-in session; it is initialised with explicit defaults and updated on
// every form submission, never shared across sessions.
type Selection struct {
	Property   string
	SearchType string
	DateRange  string
	Dimensions []string

	Device string

	CustomStart time.Time
	CustomEnd   time.Time
}

// DefaultSelection returns the documented defaults applied when a session is
// first initialised: web search, trailing 7 days, query+page grouping, all
// devices.
func DefaultSelection(today time.Time) Selection {
	return Selection{
		SearchType:  "web",
		DateRange:   "Last 7 Days",
		Dimensions:  []string{"query", "page"},
		Device:      "All Devices",
		CustomStart: today.AddDate(0, 0, -7),
		CustomEnd:   today,
	}
}
