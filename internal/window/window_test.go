package window

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAt(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	now := time.Date(2024, 3, 2, 15, 47, 12, 0, loc)

	w := At(now)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, loc), w.YesterdayStart)
	assert.Equal(t, time.Date(2024, 3, 2, 0, 0, 0, 0, loc), w.TodayStart)
}

func TestAt_Formatting(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	w := At(time.Date(2024, 3, 2, 15, 47, 12, 0, loc))

	assert.Equal(t, "2024-03-01T00:00:00+02:00", w.From())
	assert.Equal(t, "2024-03-02T00:00:00+02:00", w.To())
}

func TestAt_BoundariesAre24HoursApart(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)
	dates := []time.Time{
		time.Date(2024, 1, 1, 0, 0, 0, 0, loc),
		time.Date(2024, 2, 29, 23, 59, 59, 0, loc),
		time.Date(2024, 12, 31, 12, 0, 0, 0, loc),
		time.Date(2025, 6, 15, 8, 30, 0, 0, loc),
	}
	for _, now := range dates {
		w := At(now)
		assert.Equal(t, 24*time.Hour, w.TodayStart.Sub(w.YesterdayStart), "window for %s", now)
	}
}

func TestAt_BoundariesAreMidnights(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*60*60)
	w := At(time.Date(2024, 7, 4, 23, 59, 59, 999999999, loc))

	for _, b := range []time.Time{w.YesterdayStart, w.TodayStart} {
		assert.Zero(t, b.Hour())
		assert.Zero(t, b.Minute())
		assert.Zero(t, b.Second())
		assert.Zero(t, b.Nanosecond())
	}
}

func TestAt_MonthRollover(t *testing.T) {
	w := At(time.Date(2024, 3, 1, 6, 0, 0, 0, time.UTC))

	assert.Equal(t, "2024-02-29T00:00:00+00:00", w.From())
	assert.Equal(t, "2024-03-01T00:00:00+00:00", w.To())
}

func TestAt_YearRollover(t *testing.T) {
	w := At(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "2024-12-31T00:00:00+00:00", w.From())
	assert.Equal(t, "2025-01-01T00:00:00+00:00", w.To())
}

func TestAt_PreservesLocation(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	w := At(time.Date(2024, 5, 10, 4, 0, 0, 0, loc))

	require.Equal(t, loc, w.YesterdayStart.Location())
	require.Equal(t, loc, w.TodayStart.Location())
}
