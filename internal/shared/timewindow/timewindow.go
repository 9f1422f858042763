package timewindow

import "time"

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching intervals do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// DayBucket truncates a timestamp to its UTC calendar date.
func DayBucket(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ExpandDateRange returns every calendar day from start's date to end's date,
// inclusive. Reporting windows iterate these days even when no event falls on
// them. Returns nil when end's date precedes start's date.
func ExpandDateRange(start, end time.Time) []time.Time {
	first := DayBucket(start)
	last := DayBucket(end)
	if last.Before(first) {
		return nil
	}
	days := make([]time.Time, 0, int(last.Sub(first).Hours()/24)+1)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// QueryWindow converts an inclusive [startDate, endDate] request into the
// half-open range [startDate, endDate+1d) used by every overlap comparison.
// This is the single conversion point; callers must not add their own day.
func QueryWindow(startDate, endDate time.Time) (time.Time, time.Time) {
	return DayBucket(startDate), DayBucket(endDate).AddDate(0, 0, 1)
}

// Clamp restricts [start, end) to the window [winStart, winEnd).
func Clamp(start, end, winStart, winEnd time.Time) (time.Time, time.Time) {
	if start.Before(winStart) {
		start = winStart
	}
	if end.After(winEnd) {
		end = winEnd
	}
	return start, end
}
