package roster

import "fmt"

// CheckRestPeriod enforces the minimum gap between an earlier
// commitment ending and the candidate shift starting. Only forward
// gaps are checked; commitments still running when the shift starts
// are the double-booking rule's problem.
func CheckRestPeriod(commitments []Commitment, shift Shift, policy Policy) EligibilityVerdict {
	shiftIv := shift.Interval(policy.DefaultShiftDuration)

	shortest := -1.0
	var worst Commitment
	var worstIv Interval

	for _, c := range commitments {
		cIv := c.Interval(policy.DefaultShiftDuration)
		if !cIv.End.Before(shiftIv.Start) {
			continue
		}
		gap := shiftIv.Start.Sub(cIv.End).Hours()
		if shortest < 0 || gap < shortest {
			shortest = gap
			worst = c
			worstIv = cIv
		}
	}

	if shortest >= 0 && shortest < policy.MinRestHours {
		return EligibilityVerdict{
			Rule: RuleRestPeriod,
			OK:   false,
			Reason: fmt.Sprintf("only %.1fh rest after %s shift ending %s %s; %s shift needs %.0fh",
				shortest, Classify(worstIv), worst.ShiftDate, worst.EndTime,
				Classify(shiftIv), policy.MinRestHours),
			Details: map[string]string{
				"gap_hours":      fmt.Sprintf("%.1f", shortest),
				"required_hours": fmt.Sprintf("%.0f", policy.MinRestHours),
				"previous_end":   worst.EndTime,
			},
		}
	}

	return EligibilityVerdict{Rule: RuleRestPeriod, OK: true}
}
