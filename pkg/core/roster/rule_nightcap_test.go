package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// testNightShift is a midnight-crossing shift on the fixture date.
func testNightShift() Shift {
	s := testDayShift()
	s.StartTime = "19:30"
	s.EndTime = "08:00"
	return s
}

// priorNights builds one night commitment per day for the n days
// immediately before the fixture shift date.
func priorNights(n int) []Commitment {
	base := time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)
	var commitments []Commitment
	for i := 1; i <= n; i++ {
		commitments = append(commitments, Commitment{
			ShiftDate: base.AddDate(0, 0, -i).Format("2006-01-02"),
			StartTime: "19:30",
			EndTime:   "08:00",
			Ward:      "Alder",
		})
	}
	return commitments
}

func TestCheckNightCap_DayShiftNeverTriggers(t *testing.T) {
	// Even with a heavy night history, a day shift is exempt.
	v := CheckNightCap(priorNights(10), testDayShift(), DefaultPolicy())

	assert.True(t, v.OK)
	assert.Equal(t, RuleNightCap, v.Rule)
}

func TestCheckNightCap_UnderLimit(t *testing.T) {
	// Three prior nights plus the candidate is exactly the limit of 4.
	v := CheckNightCap(priorNights(3), testNightShift(), DefaultPolicy())
	assert.True(t, v.OK)
}

func TestCheckNightCap_OverLimit(t *testing.T) {
	v := CheckNightCap(priorNights(4), testNightShift(), DefaultPolicy())

	assert.False(t, v.OK)
	assert.Equal(t, "5", v.Details["night_count"])
	assert.Contains(t, v.Reason, "maximum of 4")
}

func TestCheckNightCap_OldNightsOutsideWindowIgnored(t *testing.T) {
	// Window for 2026-04-06 covers 2026-03-24 onward; nights before
	// that no longer count.
	base := time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)
	var commitments []Commitment
	for i := 14; i < 20; i++ {
		commitments = append(commitments, Commitment{
			ShiftDate: base.AddDate(0, 0, -i).Format("2006-01-02"),
			StartTime: "19:30",
			EndTime:   "08:00",
		})
	}

	v := CheckNightCap(commitments, testNightShift(), DefaultPolicy())
	assert.True(t, v.OK)
}

func TestCheckNightCap_DayCommitmentsInWindowDoNotCount(t *testing.T) {
	commitments := append(priorNights(3), priorDays(5)...)

	// Day commitments in the window leave the night count at 3+1.
	v := CheckNightCap(commitments, testNightShift(), DefaultPolicy())
	assert.True(t, v.OK)
}
