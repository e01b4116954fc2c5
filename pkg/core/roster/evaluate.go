package roster

import "time"

// EvaluateEligibility runs every rule against one candidate and
// returns a verdict per rule in a fixed order. No rule short-circuits:
// a manager reviewing a blocked candidate sees the complete set of
// violations, not just the first one found.
func EvaluateEligibility(profile StaffProfile, commitments []Commitment, shift Shift, policy Policy, managerOverride bool) []EligibilityVerdict {
	return []EligibilityVerdict{
		CheckDoubleBooking(commitments, shift, policy),
		CheckRestPeriod(commitments, shift, policy),
		CheckConsecutiveDays(commitments, shift, policy),
		CheckWeeklyHours(commitments, shift, policy),
		CheckNightCap(commitments, shift, policy),
		CheckTraining(profile, managerOverride),
	}
}

// weeklyCommittedHours sums the durations of commitments starting
// within the 7-day window ending at endDate inclusive.
func weeklyCommittedHours(commitments []Commitment, endDate string, defaultDuration time.Duration) float64 {
	day, err := time.ParseInLocation(dateLayout, endDate, time.UTC)
	if err != nil {
		return 0
	}
	windowStart := day.AddDate(0, 0, -6)

	var total float64
	for _, c := range commitments {
		cDay, err := time.ParseInLocation(dateLayout, c.ShiftDate, time.UTC)
		if err != nil {
			continue
		}
		if cDay.Before(windowStart) || cDay.After(day) {
			continue
		}
		total += c.Interval(defaultDuration).Hours()
	}
	return total
}
