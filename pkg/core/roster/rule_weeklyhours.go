package roster

import "fmt"

// CheckWeeklyHours sums committed hours over the 7-day window ending at
// the candidate shift's start date inclusive, plus the candidate shift
// itself. Totals over the hard cap block assignment; totals over the
// soft threshold pass but carry a working-time warning for the manager.
func CheckWeeklyHours(commitments []Commitment, shift Shift, policy Policy) EligibilityVerdict {
	shiftIv := shift.Interval(policy.DefaultShiftDuration)
	total := weeklyCommittedHours(commitments, shift.Date, policy.DefaultShiftDuration) + shiftIv.Hours()

	if total > policy.WeeklyHardHours {
		return EligibilityVerdict{
			Rule: RuleWeeklyHours,
			OK:   false,
			Reason: fmt.Sprintf("%.1fh in the 7 days ending %s exceeds the %.0fh hard cap",
				total, shift.Date, policy.WeeklyHardHours),
			Details: map[string]string{
				"weekly_hours": fmt.Sprintf("%.1f", total),
				"hard_cap":     fmt.Sprintf("%.0f", policy.WeeklyHardHours),
			},
		}
	}

	if total > policy.WeeklySoftHours {
		return EligibilityVerdict{
			Rule: RuleWeeklyHours,
			OK:   true,
			Reason: fmt.Sprintf("%.1fh in the 7 days ending %s exceeds the %.0fh working time guideline",
				total, shift.Date, policy.WeeklySoftHours),
			Details: map[string]string{
				DetailWarning:  WarningWorkingTime,
				"weekly_hours": fmt.Sprintf("%.1f", total),
				"soft_limit":   fmt.Sprintf("%.0f", policy.WeeklySoftHours),
			},
		}
	}

	return EligibilityVerdict{Rule: RuleWeeklyHours, OK: true}
}
