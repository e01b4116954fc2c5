package roster

import "time"

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"

	// fallbackStartTime is assumed when a shift record is missing its
	// start time. Shift records are sometimes incomplete upstream, so
	// normalization degrades rather than fails.
	fallbackStartTime = "07:30"
)

// Interval is a half-open absolute time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Duration returns the interval length.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Hours returns the interval length in hours.
func (iv Interval) Hours() float64 {
	return iv.Duration().Hours()
}

// Overlaps reports whether two half-open intervals intersect.
// Zero or negative length intervals never overlap anything.
func (iv Interval) Overlaps(other Interval) bool {
	if !iv.End.After(iv.Start) || !other.End.After(other.Start) {
		return false
	}
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// Normalize converts a calendar date plus HH:MM start/end times into an
// absolute interval. An end time textually at or before the start time
// means the shift crosses midnight, so the end advances one calendar
// day. A missing or unparseable time falls back to the given default
// duration from the (possibly defaulted) start.
func Normalize(date, startTime, endTime string, defaultDuration time.Duration) Interval {
	if defaultDuration <= 0 {
		defaultDuration = 12 * time.Hour
	}

	day, err := time.ParseInLocation(dateLayout, date, time.UTC)
	if err != nil {
		// Malformed dates keep a well-formed relative interval.
		day = time.Time{}
	}

	st, stErr := time.Parse(timeLayout, startTime)
	if stErr != nil {
		st, _ = time.Parse(timeLayout, fallbackStartTime)
	}
	start := day.Add(clockOffset(st))

	et, etErr := time.Parse(timeLayout, endTime)
	if stErr != nil || etErr != nil {
		return Interval{Start: start, End: start.Add(defaultDuration)}
	}

	end := day.Add(clockOffset(et))
	if !end.After(start) {
		end = end.Add(24 * time.Hour)
	}

	return Interval{Start: start, End: end}
}

// clockOffset converts a parsed wall-clock time into an offset from
// midnight.
func clockOffset(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
}

// Interval normalizes the shift's own date and times.
func (s Shift) Interval(defaultDuration time.Duration) Interval {
	return Normalize(s.Date, s.StartTime, s.EndTime, defaultDuration)
}

// Interval normalizes the commitment's date and times.
func (c Commitment) Interval(defaultDuration time.Duration) Interval {
	return Normalize(c.ShiftDate, c.StartTime, c.EndTime, defaultDuration)
}
