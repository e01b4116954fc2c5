package roster

import "fmt"

// CheckDoubleBooking fails when any existing commitment overlaps the
// candidate shift's interval. Overlap is evaluated on half-open
// intervals, so a commitment ending exactly when the shift starts does
// not conflict.
func CheckDoubleBooking(commitments []Commitment, shift Shift, policy Policy) EligibilityVerdict {
	shiftIv := shift.Interval(policy.DefaultShiftDuration)

	for _, c := range commitments {
		cIv := c.Interval(policy.DefaultShiftDuration)
		if !shiftIv.Overlaps(cIv) {
			continue
		}
		return EligibilityVerdict{
			Rule:   RuleDoubleBooking,
			OK:     false,
			Reason: fmt.Sprintf("already committed to a shift on %s (%s-%s, ward %s)", c.ShiftDate, c.StartTime, c.EndTime, c.Ward),
			Details: map[string]string{
				"conflict_date":  c.ShiftDate,
				"conflict_start": c.StartTime,
				"conflict_end":   c.EndTime,
				"conflict_ward":  c.Ward,
			},
		}
	}

	return EligibilityVerdict{Rule: RuleDoubleBooking, OK: true}
}
