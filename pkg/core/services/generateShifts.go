package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/oakfieldcare/wardroster/internal/config"
	"github.com/oakfieldcare/wardroster/pkg/db"
)

// GenerateShiftsStore defines the database operations needed to expand
// recurring shift templates.
type GenerateShiftsStore interface {
	ListShifts(ctx context.Context, organisationID string) ([]db.Shift, error)
	InsertShifts(ctx context.Context, shifts []db.Shift) error
}

// GenerateShiftsResult reports the expansion outcome.
type GenerateShiftsResult struct {
	Created []db.Shift
	Skipped int
}

// GenerateShifts expands the configured recurring shift templates into
// open shift rows between from and the configured horizon. Dates that
// already have a matching shift (same ward, role and start time) are
// skipped, so repeated runs are idempotent.
func GenerateShifts(
	ctx context.Context,
	store GenerateShiftsStore,
	logger *zap.Logger,
	cfg *config.Config,
	from time.Time,
) (*GenerateShiftsResult, error) {
	horizon := cfg.HorizonDays
	if horizon <= 0 {
		horizon = 28
	}
	until := from.AddDate(0, 0, horizon)

	existing, err := store.ListShifts(ctx, cfg.OrganisationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load existing shifts: %w", err)
	}
	seen := make(map[string]bool, len(existing))
	for _, s := range existing {
		seen[shiftKey(s.Ward, s.RoleRequired, s.ShiftDate, s.StartTime)] = true
	}

	result := &GenerateShiftsResult{}
	for i, tmpl := range cfg.ShiftTemplates {
		rule, err := rrule.StrToRRule(tmpl.RRule)
		if err != nil {
			// Config validation already checks rrule syntax; a bad rule
			// here means the config was bypassed.
			return nil, fmt.Errorf("invalid rrule in shiftTemplates[%d]: %w", i, err)
		}
		rule.DTStart(from.AddDate(0, 0, -1))

		for _, occurrence := range rule.Between(from, until, true) {
			date := occurrence.Format("2006-01-02")
			key := shiftKey(tmpl.Ward, tmpl.Role, date, tmpl.StartTime)
			if seen[key] {
				result.Skipped++
				continue
			}
			seen[key] = true

			required := tmpl.RequiredCount
			if required < 1 {
				required = 1
			}
			gender := tmpl.GenderRequirement
			if gender == "" {
				gender = "any"
			}

			result.Created = append(result.Created, db.Shift{
				ID:                uuid.NewString(),
				OrganisationID:    cfg.OrganisationID,
				Ward:              tmpl.Ward,
				RoleRequired:      tmpl.Role,
				GenderRequirement: gender,
				RequiredCount:     required,
				ShiftDate:         date,
				StartTime:         tmpl.StartTime,
				EndTime:           tmpl.EndTime,
				Status:            "open",
			})
		}
	}

	if err := store.InsertShifts(ctx, result.Created); err != nil {
		return nil, fmt.Errorf("failed to insert generated shifts: %w", err)
	}

	logger.Info("Shift templates expanded",
		zap.Int("created", len(result.Created)),
		zap.Int("skipped", result.Skipped),
		zap.Time("until", until))

	return result, nil
}

func shiftKey(ward, role, date, startTime string) string {
	return ward + "|" + role + "|" + date + "|" + startTime
}
