package roster

import (
	"fmt"
	"time"
)

// CheckNightCap limits night shifts over a rolling window ending at the
// candidate shift's date inclusive. Day shifts never trigger the rule
// no matter how many nights are already in the window.
func CheckNightCap(commitments []Commitment, shift Shift, policy Policy) EligibilityVerdict {
	shiftIv := shift.Interval(policy.DefaultShiftDuration)
	if Classify(shiftIv) != ShiftTypeNight {
		return EligibilityVerdict{Rule: RuleNightCap, OK: true}
	}

	day, err := time.ParseInLocation(dateLayout, shift.Date, time.UTC)
	if err != nil {
		return EligibilityVerdict{Rule: RuleNightCap, OK: true}
	}
	windowStart := day.AddDate(0, 0, -(policy.NightWindowDays - 1))

	nights := 1 // the candidate shift itself
	for _, c := range commitments {
		cDay, err := time.ParseInLocation(dateLayout, c.ShiftDate, time.UTC)
		if err != nil {
			continue
		}
		if cDay.Before(windowStart) || cDay.After(day) {
			continue
		}
		if Classify(c.Interval(policy.DefaultShiftDuration)) == ShiftTypeNight {
			nights++
		}
	}

	if nights > policy.MaxNightsInWindow {
		return EligibilityVerdict{
			Rule: RuleNightCap,
			OK:   false,
			Reason: fmt.Sprintf("%d night shifts in %d days exceeds the maximum of %d",
				nights, policy.NightWindowDays, policy.MaxNightsInWindow),
			Details: map[string]string{
				"night_count": fmt.Sprintf("%d", nights),
				"window_days": fmt.Sprintf("%d", policy.NightWindowDays),
				"max_nights":  fmt.Sprintf("%d", policy.MaxNightsInWindow),
			},
		}
	}

	return EligibilityVerdict{Rule: RuleNightCap, OK: true}
}
