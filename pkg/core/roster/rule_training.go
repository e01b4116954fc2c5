package roster

// CheckTraining gates assignment on mandatory training compliance.
// Unknown status is treated permissively. A manager override turns an
// incomplete-training block into a pass with a warning attached.
func CheckTraining(profile StaffProfile, managerOverride bool) EligibilityVerdict {
	if profile.TrainingComplete == nil || *profile.TrainingComplete {
		return EligibilityVerdict{Rule: RuleTraining, OK: true}
	}

	if managerOverride {
		return EligibilityVerdict{
			Rule:   RuleTraining,
			OK:     true,
			Reason: "mandatory training incomplete; assigned under manager override",
			Details: map[string]string{
				DetailWarning: WarningTrainingOverride,
			},
		}
	}

	return EligibilityVerdict{
		Rule:   RuleTraining,
		OK:     false,
		Reason: "mandatory training incomplete",
	}
}
