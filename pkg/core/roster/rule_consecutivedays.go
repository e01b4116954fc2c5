package roster

import (
	"fmt"
	"time"
)

// CheckConsecutiveDays walks backward from the candidate shift's date
// through the set of worked calendar dates and fails when the streak,
// including the candidate's own date, exceeds the policy maximum. A
// single shift on a day marks the whole day as worked regardless of
// its length.
func CheckConsecutiveDays(commitments []Commitment, shift Shift, policy Policy) EligibilityVerdict {
	day, err := time.ParseInLocation(dateLayout, shift.Date, time.UTC)
	if err != nil {
		// Without a usable date there is no streak to measure.
		return EligibilityVerdict{Rule: RuleConsecutiveDays, OK: true}
	}

	worked := make(map[string]bool, len(commitments))
	for _, c := range commitments {
		worked[c.ShiftDate] = true
	}

	streak := 1
	for d := day.AddDate(0, 0, -1); worked[d.Format(dateLayout)]; d = d.AddDate(0, 0, -1) {
		streak++
	}

	if streak > policy.MaxConsecutiveDays {
		return EligibilityVerdict{
			Rule: RuleConsecutiveDays,
			OK:   false,
			Reason: fmt.Sprintf("%d consecutive working days would exceed the maximum of %d",
				streak, policy.MaxConsecutiveDays),
			Details: map[string]string{
				"streak_days": fmt.Sprintf("%d", streak),
				"max_days":    fmt.Sprintf("%d", policy.MaxConsecutiveDays),
			},
		}
	}

	return EligibilityVerdict{Rule: RuleConsecutiveDays, OK: true}
}
