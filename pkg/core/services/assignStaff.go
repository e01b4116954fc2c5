package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/oakfieldcare/wardroster/pkg/core/roster"
	"github.com/oakfieldcare/wardroster/pkg/db"
)

// ErrNotEligible is returned when a direct assignment is blocked by
// one or more eligibility rules and force was not requested.
var ErrNotEligible = errors.New("staff member is not eligible for this shift")

// ErrShiftFull is returned when the shift already has its required
// headcount.
var ErrShiftFull = errors.New("shift is already fully staffed")

// AssignStaffStore defines the database operations needed to record a
// direct assignment.
type AssignStaffStore interface {
	CheckEligibilityStore
	InsertAssignment(ctx context.Context, a db.Assignment) error
	UpdateShiftFilled(ctx context.Context, shiftID string, filledCount int, status string) error
}

// AssignStaffResult reports a recorded assignment.
type AssignStaffResult struct {
	Assignment  db.Assignment
	Report      *EligibilityReport
	ShiftFilled bool
}

// AssignStaff records a direct assignment of a staff member to a
// shift, the path a manager action or messaging workflow takes. The
// full rule set runs first; blocking violations refuse the assignment
// unless force is set, in which case the override is recorded on the
// assignment row.
func AssignStaff(
	ctx context.Context,
	store AssignStaffStore,
	logger *zap.Logger,
	policy roster.Policy,
	shiftID, staffID, assignedBy string,
	managerOverride, force bool,
) (*AssignStaffResult, error) {
	report, err := CheckEligibility(ctx, store, logger, policy, shiftID, staffID, managerOverride)
	if err != nil {
		return nil, err
	}

	if report.Shift.FilledCount >= report.Shift.RequiredCount {
		return nil, fmt.Errorf("%w: %d of %d filled", ErrShiftFull, report.Shift.FilledCount, report.Shift.RequiredCount)
	}

	if gr := report.Shift.GenderRequirement; gr != "" && gr != "any" && report.Staff.Gender != gr {
		return nil, fmt.Errorf("staff member does not meet the shift's gender requirement (%s)", gr)
	}

	if !report.Eligible && !force {
		for _, v := range report.Verdicts {
			if !v.OK {
				logger.Warn("Assignment refused",
					zap.String("rule", string(v.Rule)),
					zap.String("reason", v.Reason))
			}
		}
		return &AssignStaffResult{Report: report}, ErrNotEligible
	}

	assignment := db.Assignment{
		ID:         uuid.NewString(),
		ShiftID:    shiftID,
		StaffID:    staffID,
		AssignedBy: assignedBy,
		Overridden: managerOverride || (!report.Eligible && force),
	}
	if err := store.InsertAssignment(ctx, assignment); err != nil {
		return nil, fmt.Errorf("failed to record assignment: %w", err)
	}

	filled := report.Shift.FilledCount + 1
	status := report.Shift.Status
	if filled >= report.Shift.RequiredCount {
		status = string(roster.ShiftFilled)
	}
	if err := store.UpdateShiftFilled(ctx, shiftID, filled, status); err != nil {
		return nil, fmt.Errorf("failed to update shift fill count: %w", err)
	}

	logger.Info("Staff assigned",
		zap.String("shift_id", shiftID),
		zap.String("staff_id", staffID),
		zap.Bool("overridden", assignment.Overridden),
		zap.Int("filled_count", filled))

	return &AssignStaffResult{
		Assignment:  assignment,
		Report:      report,
		ShiftFilled: filled >= report.Shift.RequiredCount,
	}, nil
}
