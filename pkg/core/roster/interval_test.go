package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_SameDayShift(t *testing.T) {
	iv := Normalize("2026-04-06", "07:30", "19:30", 12*time.Hour)

	assert.Equal(t, time.Date(2026, 4, 6, 7, 30, 0, 0, time.UTC), iv.Start)
	assert.Equal(t, time.Date(2026, 4, 6, 19, 30, 0, 0, time.UTC), iv.End)
	assert.Equal(t, 12.0, iv.Hours())
}

func TestNormalize_MidnightCrossing(t *testing.T) {
	iv := Normalize("2026-04-06", "19:30", "08:00", 12*time.Hour)

	// End time textually before start time means the shift ends the
	// following calendar day.
	assert.Equal(t, time.Date(2026, 4, 6, 19, 30, 0, 0, time.UTC), iv.Start)
	assert.Equal(t, time.Date(2026, 4, 7, 8, 0, 0, 0, time.UTC), iv.End)
	assert.True(t, iv.End.After(iv.Start))
}

func TestNormalize_EqualTimesCrossMidnight(t *testing.T) {
	iv := Normalize("2026-04-06", "08:00", "08:00", 12*time.Hour)

	assert.Equal(t, time.Date(2026, 4, 7, 8, 0, 0, 0, time.UTC), iv.End)
	assert.Equal(t, 24.0, iv.Hours())
}

func TestNormalize_MissingEndFallsBackToDefaultDuration(t *testing.T) {
	iv := Normalize("2026-04-06", "09:00", "", 12*time.Hour)

	assert.Equal(t, time.Date(2026, 4, 6, 9, 0, 0, 0, time.UTC), iv.Start)
	assert.Equal(t, 12.0, iv.Hours())
}

func TestNormalize_MissingStartFallsBackToDefaultStart(t *testing.T) {
	iv := Normalize("2026-04-06", "", "19:30", 12*time.Hour)

	assert.Equal(t, time.Date(2026, 4, 6, 7, 30, 0, 0, time.UTC), iv.Start)
	assert.Equal(t, 12.0, iv.Hours())
}

func TestNormalize_ZeroDefaultDuration(t *testing.T) {
	iv := Normalize("2026-04-06", "", "", 0)

	require.True(t, iv.End.After(iv.Start))
	assert.Equal(t, 12.0, iv.Hours())
}

func TestOverlaps(t *testing.T) {
	day := func(h, m int) time.Time {
		return time.Date(2026, 4, 6, h, m, 0, 0, time.UTC)
	}

	a := Interval{Start: day(7, 30), End: day(19, 30)}
	b := Interval{Start: day(19, 0), End: day(23, 0)}
	c := Interval{Start: day(19, 30), End: day(23, 0)}

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a), "overlap must be symmetric")

	// Half-open: back-to-back shifts do not conflict.
	assert.False(t, a.Overlaps(c))
	assert.False(t, c.Overlaps(a))
}

func TestOverlaps_DegenerateIntervalsNeverOverlap(t *testing.T) {
	at := time.Date(2026, 4, 6, 12, 0, 0, 0, time.UTC)

	empty := Interval{Start: at, End: at}
	negative := Interval{Start: at, End: at.Add(-time.Hour)}
	normal := Interval{Start: at.Add(-2 * time.Hour), End: at.Add(2 * time.Hour)}

	assert.False(t, empty.Overlaps(normal))
	assert.False(t, normal.Overlaps(empty))
	assert.False(t, negative.Overlaps(normal))
	assert.False(t, normal.Overlaps(negative))
}
