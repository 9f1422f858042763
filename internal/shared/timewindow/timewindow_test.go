package timewindow_test

import (
	"testing"
	"time"

	"github.com/BenitoJD/ROTA-API/internal/shared/timewindow"

	"github.com/stretchr/testify/assert"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOverlaps(t *testing.T) {
	t.Run("symmetric", func(t *testing.T) {
		aStart, aEnd := ts("2024-01-01T09:00:00Z"), ts("2024-01-01T17:00:00Z")
		bStart, bEnd := ts("2024-01-01T16:00:00Z"), ts("2024-01-01T20:00:00Z")

		assert.True(t, timewindow.Overlaps(aStart, aEnd, bStart, bEnd))
		assert.True(t, timewindow.Overlaps(bStart, bEnd, aStart, aEnd))
	})

	t.Run("self overlap for non-empty interval", func(t *testing.T) {
		start, end := ts("2024-01-01T09:00:00Z"), ts("2024-01-01T17:00:00Z")
		assert.True(t, timewindow.Overlaps(start, end, start, end))
	})

	t.Run("touching intervals do not overlap", func(t *testing.T) {
		assert.False(t, timewindow.Overlaps(
			ts("2024-01-01T09:00:00Z"), ts("2024-01-01T17:00:00Z"),
			ts("2024-01-01T17:00:00Z"), ts("2024-01-01T20:00:00Z"),
		))
	})

	t.Run("disjoint intervals", func(t *testing.T) {
		assert.False(t, timewindow.Overlaps(
			ts("2024-01-01T09:00:00Z"), ts("2024-01-01T12:00:00Z"),
			ts("2024-01-02T09:00:00Z"), ts("2024-01-02T12:00:00Z"),
		))
	})
}

func TestDayBucket(t *testing.T) {
	got := timewindow.DayBucket(ts("2024-03-15T18:45:12Z"))
	assert.Equal(t, ts("2024-03-15T00:00:00Z"), got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestExpandDateRange(t *testing.T) {
	t.Run("inclusive of both endpoints", func(t *testing.T) {
		days := timewindow.ExpandDateRange(ts("2024-01-01T08:30:00Z"), ts("2024-01-03T23:00:00Z"))
		assert.Len(t, days, 3)
		assert.Equal(t, ts("2024-01-01T00:00:00Z"), days[0])
		assert.Equal(t, ts("2024-01-03T00:00:00Z"), days[2])
	})

	t.Run("single day", func(t *testing.T) {
		days := timewindow.ExpandDateRange(ts("2024-01-01T08:00:00Z"), ts("2024-01-01T20:00:00Z"))
		assert.Len(t, days, 1)
	})

	t.Run("inverted range is empty", func(t *testing.T) {
		assert.Nil(t, timewindow.ExpandDateRange(ts("2024-01-05T00:00:00Z"), ts("2024-01-01T00:00:00Z")))
	})
}

func TestQueryWindow(t *testing.T) {
	start, end := timewindow.QueryWindow(ts("2024-01-01T10:00:00Z"), ts("2024-01-03T10:00:00Z"))
	assert.Equal(t, ts("2024-01-01T00:00:00Z"), start)
	assert.Equal(t, ts("2024-01-04T00:00:00Z"), end)

	// An event late on the end date still falls inside the window.
	assert.True(t, timewindow.Overlaps(ts("2024-01-03T22:00:00Z"), ts("2024-01-03T23:00:00Z"), start, end))
}

func TestClamp(t *testing.T) {
	winStart, winEnd := ts("2024-01-01T00:00:00Z"), ts("2024-01-04T00:00:00Z")

	s, e := timewindow.Clamp(ts("2023-12-30T00:00:00Z"), ts("2024-01-06T00:00:00Z"), winStart, winEnd)
	assert.Equal(t, winStart, s)
	assert.Equal(t, winEnd, e)

	s, e = timewindow.Clamp(ts("2024-01-02T08:00:00Z"), ts("2024-01-02T20:00:00Z"), winStart, winEnd)
	assert.Equal(t, ts("2024-01-02T08:00:00Z"), s)
	assert.Equal(t, ts("2024-01-02T20:00:00Z"), e)
}
