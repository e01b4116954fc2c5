package roster

import "time"

// Policy is the tunable rule and scoring configuration for one
// evaluation call. It is passed by value so concurrent rankings with
// different overrides cannot interfere.
type Policy struct {
	// MinRestHours is the minimum gap between a commitment ending and
	// the candidate shift starting.
	MinRestHours float64

	// MaxConsecutiveDays is the longest allowed run of worked calendar
	// days, counting the candidate shift's own date.
	MaxConsecutiveDays int

	// WeeklySoftHours triggers a non-blocking working-time warning.
	WeeklySoftHours float64

	// WeeklyHardHours blocks assignment outright.
	WeeklyHardHours float64

	// NightWindowDays and MaxNightsInWindow cap night shifts over a
	// rolling window ending at the candidate shift's date.
	NightWindowDays   int
	MaxNightsInWindow int

	// DefaultShiftDuration is assumed when a shift record has a
	// missing or unparseable time field.
	DefaultShiftDuration time.Duration

	Weights ScoreWeights
}

// ScoreWeights names every additive scoring contribution so tests can
// assert on individual weights rather than opaque totals.
type ScoreWeights struct {
	TierPermanent float64
	TierBank      float64
	TierAgency    float64

	HomeWardMatch float64
	HomeWardKnown float64

	PreferenceMatch    float64
	PreferenceAny      float64
	PreferenceMismatch float64

	UnderUtilized float64 // projected utilization < 0.5
	WellUtilized  float64 // 0.5 <= utilization <= 1.0
	OverContract  float64 // utilization > 1.0

	LowWeeklyHours  float64 // non-permanent, < 24h this week
	HighWeeklyHours float64 // non-permanent, > 48h this week

	WellbeingFragile   float64 // 0 < wellbeing < 30
	WellbeingResilient float64 // wellbeing > 70
}

// DefaultPolicy returns the reference rule thresholds and weights.
func DefaultPolicy() Policy {
	return Policy{
		MinRestHours:         11,
		MaxConsecutiveDays:   6,
		WeeklySoftHours:      48,
		WeeklyHardHours:      72,
		NightWindowDays:      14,
		MaxNightsInWindow:    4,
		DefaultShiftDuration: 12 * time.Hour,
		Weights: ScoreWeights{
			TierPermanent:      40,
			TierBank:           20,
			TierAgency:         5,
			HomeWardMatch:      30,
			HomeWardKnown:      5,
			PreferenceMatch:    15,
			PreferenceAny:      10,
			PreferenceMismatch: -5,
			UnderUtilized:      35,
			WellUtilized:       20,
			OverContract:       -10,
			LowWeeklyHours:     10,
			HighWeeklyHours:    -10,
			WellbeingFragile:   -5,
			WellbeingResilient: 5,
		},
	}
}
