package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckRestPeriod_ShortGapAfterNightShift(t *testing.T) {
	// Night shift ends 06:30, day shift starts 07:30: one hour of rest.
	commitments := []Commitment{
		{ShiftDate: "2026-04-05", StartTime: "19:30", EndTime: "06:30", Ward: "Rowan"},
	}

	v := CheckRestPeriod(commitments, testDayShift(), DefaultPolicy())

	assert.False(t, v.OK)
	assert.Equal(t, RuleRestPeriod, v.Rule)
	assert.Contains(t, v.Reason, "1.0h rest")
	assert.Contains(t, v.Reason, "night")
	assert.Contains(t, v.Reason, "day")
	assert.Equal(t, "1.0", v.Details["gap_hours"])
}

func TestCheckRestPeriod_SufficientGap(t *testing.T) {
	// Previous day shift ends 19:30, next starts 07:30: 12h rest.
	commitments := []Commitment{
		{ShiftDate: "2026-04-05", StartTime: "07:30", EndTime: "19:30", Ward: "Alder"},
	}

	v := CheckRestPeriod(commitments, testDayShift(), DefaultPolicy())
	assert.True(t, v.OK)
}

func TestCheckRestPeriod_ExactMinimumPasses(t *testing.T) {
	// Ends 20:30 the night before, starts 07:30: exactly 11h.
	commitments := []Commitment{
		{ShiftDate: "2026-04-05", StartTime: "12:30", EndTime: "20:30", Ward: "Alder"},
	}

	v := CheckRestPeriod(commitments, testDayShift(), DefaultPolicy())
	assert.True(t, v.OK)
}

func TestCheckRestPeriod_OnlyForwardGapsChecked(t *testing.T) {
	// A commitment starting after the candidate shift is not a rest
	// problem looking forward from it.
	commitments := []Commitment{
		{ShiftDate: "2026-04-07", StartTime: "07:30", EndTime: "19:30", Ward: "Alder"},
	}

	v := CheckRestPeriod(commitments, testDayShift(), DefaultPolicy())
	assert.True(t, v.OK)
}

func TestCheckRestPeriod_ReportsShortestGap(t *testing.T) {
	commitments := []Commitment{
		{ShiftDate: "2026-04-04", StartTime: "07:30", EndTime: "19:30", Ward: "Alder"},
		{ShiftDate: "2026-04-05", StartTime: "14:00", EndTime: "22:00", Ward: "Rowan"},
	}

	v := CheckRestPeriod(commitments, testDayShift(), DefaultPolicy())

	assert.False(t, v.OK)
	assert.Equal(t, "9.5", v.Details["gap_hours"])
}
