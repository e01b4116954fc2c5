package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/oakfieldcare/wardroster/pkg/core/roster"
	"github.com/oakfieldcare/wardroster/pkg/db"
)

// CheckEligibilityStore defines the database operations needed to
// evaluate one staff member against one shift.
type CheckEligibilityStore interface {
	GetShift(ctx context.Context, id string) (db.Shift, error)
	GetStaff(ctx context.Context, id string) (db.Staff, error)
	GetCommitments(ctx context.Context, staffID string) ([]db.Commitment, error)
}

// EligibilityReport is the full per-rule evaluation for one candidate,
// produced for the direct-assignment path.
type EligibilityReport struct {
	Shift    db.Shift
	Staff    db.Staff
	Eligible bool
	Verdicts []roster.EligibilityVerdict
	Score    roster.ScoreResult
}

// CheckEligibility evaluates a single staff member against a shift and
// returns every rule verdict plus the desirability score. A blocked
// candidate is a normal result, not an error.
func CheckEligibility(
	ctx context.Context,
	store CheckEligibilityStore,
	logger *zap.Logger,
	policy roster.Policy,
	shiftID, staffID string,
	managerOverride bool,
) (*EligibilityReport, error) {
	logger.Debug("Checking eligibility",
		zap.String("shift_id", shiftID),
		zap.String("staff_id", staffID),
		zap.Bool("manager_override", managerOverride))

	shiftRow, err := store.GetShift(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shift: %w", err)
	}

	staffRow, err := store.GetStaff(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to load staff member: %w", err)
	}

	commitmentRows, err := store.GetCommitments(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to load commitments: %w", err)
	}

	shift := shiftFromRow(shiftRow)
	profile := profileFromRow(staffRow)
	commitments := commitmentsFromRows(commitmentRows)

	verdicts := roster.EvaluateEligibility(profile, commitments, shift, policy, managerOverride)
	eligible := true
	for _, v := range verdicts {
		if !v.OK {
			eligible = false
			logger.Debug("Rule violated",
				zap.String("rule", string(v.Rule)),
				zap.String("reason", v.Reason))
		}
	}

	return &EligibilityReport{
		Shift:    shiftRow,
		Staff:    staffRow,
		Eligible: eligible,
		Verdicts: verdicts,
		Score:    roster.Score(profile, shift, commitments, policy),
	}, nil
}
