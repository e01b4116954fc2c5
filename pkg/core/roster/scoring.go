package roster

import "fmt"

// Score computes the additive desirability score for assigning a
// candidate to a shift. Every contribution appends a reason string in
// evaluation order; callers surface these to managers verbatim, so the
// order and wording are stable.
func Score(profile StaffProfile, shift Shift, commitments []Commitment, policy Policy) ScoreResult {
	w := policy.Weights
	result := ScoreResult{Reasons: []string{}}

	add := func(points float64, format string, args ...any) {
		result.Score += points
		result.Reasons = append(result.Reasons, fmt.Sprintf(format+" (%+g)", append(args, points)...))
	}

	// Employment tier priority. Unknown tiers contribute nothing.
	switch profile.EmploymentTier {
	case TierPermanent:
		add(w.TierPermanent, "permanent staff priority")
	case TierBank:
		add(w.TierBank, "bank staff priority")
	case TierAgency:
		add(w.TierAgency, "agency staff")
	}

	// Home location.
	if profile.HomeWard != "" {
		if profile.HomeWard == shift.Ward {
			add(w.HomeWardMatch, "home ward match: %s", shift.Ward)
		} else {
			add(w.HomeWardKnown, "cross-ward cover from %s", profile.HomeWard)
		}
	}

	// Shift type preference.
	shiftIv := shift.Interval(policy.DefaultShiftDuration)
	shiftType := Classify(shiftIv)
	switch {
	case profile.PreferredShiftType == PreferenceAny:
		add(w.PreferenceAny, "flexible on shift type")
	case profile.PreferredShiftType == "":
		// No recorded preference, no contribution.
	case profile.PreferredShiftType == shiftType:
		add(w.PreferenceMatch, "prefers %s shifts", shiftType)
	default:
		add(w.PreferenceMismatch, "prefers %s shifts, this is %s", profile.PreferredShiftType, shiftType)
	}

	// Contract-hours fairness.
	projected := weeklyCommittedHours(commitments, shift.Date, policy.DefaultShiftDuration) + shiftIv.Hours()
	if profile.EmploymentTier == TierPermanent {
		if profile.ContractedHours > 0 {
			utilization := projected / profile.ContractedHours
			switch {
			case utilization < 0.5:
				add(w.UnderUtilized, "under contracted hours (%.0f%% utilized)", utilization*100)
			case utilization <= 1.0:
				add(w.WellUtilized, "within contracted hours (%.0f%% utilized)", utilization*100)
			default:
				add(w.OverContract, "over contracted hours (%.0f%% utilized)", utilization*100)
			}
		}
	} else {
		switch {
		case projected < 24:
			add(w.LowWeeklyHours, "light week (%.1fh)", projected)
		case projected > 48:
			add(w.HighWeeklyHours, "heavy week (%.1fh)", projected)
		}
	}

	// Wellbeing adjustment. A score of zero means nothing recorded.
	switch {
	case profile.WellbeingScore <= 0:
	case profile.WellbeingScore < 30:
		add(w.WellbeingFragile, "low wellbeing score (%d)", profile.WellbeingScore)
	case profile.WellbeingScore > 70:
		add(w.WellbeingResilient, "high wellbeing score (%d)", profile.WellbeingScore)
	}

	return result
}
