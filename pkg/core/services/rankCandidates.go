package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/oakfieldcare/wardroster/pkg/core/roster"
	"github.com/oakfieldcare/wardroster/pkg/db"
)

// RankCandidatesStore defines the database operations needed to rank
// candidates for a shift.
type RankCandidatesStore interface {
	GetShift(ctx context.Context, id string) (db.Shift, error)
	ListCandidatesForShift(ctx context.Context, organisationID, role, genderRequirement string) ([]db.Staff, error)
	GetCommitments(ctx context.Context, staffID string) ([]db.Commitment, error)
}

// RankCandidatesResult pairs the shift with its ranked candidate pool.
type RankCandidatesResult struct {
	Shift     db.Shift
	ShiftType roster.ShiftType
	Ranking   roster.RankingResult
}

// RankCandidatesForShift loads a shift and its candidate pool from
// storage and runs the eligibility and scoring engine over every
// candidate. An empty pool is a normal outcome with empty rankings.
func RankCandidatesForShift(
	ctx context.Context,
	store RankCandidatesStore,
	logger *zap.Logger,
	policy roster.Policy,
	shiftID string,
	limit int,
) (*RankCandidatesResult, error) {
	logger.Debug("Ranking candidates", zap.String("shift_id", shiftID), zap.Int("limit", limit))

	shiftRow, err := store.GetShift(ctx, shiftID)
	if err != nil {
		return nil, fmt.Errorf("failed to load shift: %w", err)
	}
	shift := shiftFromRow(shiftRow)

	staffRows, err := store.ListCandidatesForShift(ctx, shiftRow.OrganisationID, shiftRow.RoleRequired, shiftRow.GenderRequirement)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate pool: %w", err)
	}
	logger.Debug("Candidate pool loaded", zap.Int("count", len(staffRows)))

	candidates := make([]roster.Candidate, 0, len(staffRows))
	for _, row := range staffRows {
		commitmentRows, err := store.GetCommitments(ctx, row.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load commitments for %s: %w", row.ID, err)
		}
		candidates = append(candidates, roster.Candidate{
			Profile:     profileFromRow(row),
			Commitments: commitmentsFromRows(commitmentRows),
		})
	}

	ranking := roster.Rank(shift, candidates, policy, limit)
	logger.Info("Candidates ranked",
		zap.String("shift_id", shiftID),
		zap.Int("pool_size", len(candidates)),
		zap.Int("eligible_top", len(ranking.EligibleTop)))

	return &RankCandidatesResult{
		Shift:     shiftRow,
		ShiftType: roster.Classify(shift.Interval(policy.DefaultShiftDuration)),
		Ranking:   ranking,
	}, nil
}
