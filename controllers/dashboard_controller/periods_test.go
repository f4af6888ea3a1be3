package dashboard_controller

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthPeriod(t *testing.T) {
	anchor := time.Date(2024, time.April, 18, 15, 30, 12, 0, time.UTC)
	p := monthPeriod(anchor)

	assert.Equal(t, "April 2024", p.label)
	assert.Equal(t, time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC), p.start)
	// Inclusive end: the last instant of April 30.
	assert.Equal(t, time.April, p.end.Month())
	assert.Equal(t, 30, p.end.Day())
	assert.True(t, p.end.Before(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)))
}

func TestMonthPeriodNormalizesZone(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*3600)
	// 02:00 WIB on May 1 is still April 30 in UTC.
	anchor := time.Date(2024, time.May, 1, 2, 0, 0, 0, jakarta)
	p := monthPeriod(anchor)

	assert.Equal(t, "April 2024", p.label)
}

func TestResolvePeriods(t *testing.T) {
	latest := time.Date(2024, time.April, 9, 8, 0, 0, 0, time.UTC)
	current, previous := resolvePeriods(latest)

	assert.Equal(t, "April 2024", current.label)
	assert.Equal(t, "March 2024", previous.label)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), previous.start)
	assert.Equal(t, 31, previous.end.Day())
}

func TestResolvePeriodsAcrossYearBoundary(t *testing.T) {
	latest := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
	current, previous := resolvePeriods(latest)

	assert.Equal(t, "January 2025", current.label)
	assert.Equal(t, "December 2024", previous.label)
}

func TestResolvePeriodsIgnoresWallClock(t *testing.T) {
	// A stale dataset whose newest record is long in the past still anchors
	// the comparison to that record's month.
	latest := time.Date(2023, time.August, 20, 0, 0, 0, 0, time.UTC)
	current, previous := resolvePeriods(latest)

	assert.Equal(t, "August 2023", current.label)
	assert.Equal(t, "July 2023", previous.label)
}
