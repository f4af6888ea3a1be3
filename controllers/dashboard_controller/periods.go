package dashboard_controller

import "time"

// period is one calendar month with inclusive boundaries.
type period struct {
	label string
	start time.Time
	end   time.Time
}

// monthPeriod returns the calendar month containing anchor.
func monthPeriod(anchor time.Time) period {
	anchor = anchor.UTC()
	start := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
	return period{
		label: start.Format("January 2006"),
		start: start,
		end:   start.AddDate(0, 1, 0).Add(-time.Nanosecond),
	}
}

// resolvePeriods anchors the comparison to the newest sales record, not the
// wall clock, so trends stay meaningful against stale or historical datasets.
func resolvePeriods(latest time.Time) (current, previous period) {
	current = monthPeriod(latest)
	previous = monthPeriod(current.start.AddDate(0, -1, 0))
	return current, previous
}
