package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/oakfieldcare/wardroster/pkg/db"
)

const staffColumns = `id, organisation_id, first_name, last_name, role, gender,
	home_ward, preferred_shift_type, employment_tier, contracted_hours,
	training_complete, wellbeing_score, active`

// GetStaff retrieves a single staff member by ID.
func (d *DB) GetStaff(ctx context.Context, id string) (db.Staff, error) {
	row := d.pool.QueryRow(ctx, `SELECT `+staffColumns+` FROM staff WHERE id = $1`, id)

	s, err := scanStaff(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.Staff{}, fmt.Errorf("staff member %s not found", id)
	}
	if err != nil {
		return db.Staff{}, fmt.Errorf("failed to query staff member: %w", err)
	}
	return s, nil
}

// ListStaff retrieves all staff for an organisation.
func (d *DB) ListStaff(ctx context.Context, organisationID string) ([]db.Staff, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+staffColumns+`
		FROM staff
		WHERE organisation_id = $1
		ORDER BY last_name, first_name
	`, organisationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff: %w", err)
	}
	defer rows.Close()

	return collectStaff(rows)
}

// ListCandidatesForShift retrieves active staff who hold the required
// role and satisfy the shift's gender requirement. The gender filter
// lives in the pool query so the eligibility engine never sees
// candidates the shift could not accept.
func (d *DB) ListCandidatesForShift(ctx context.Context, organisationID, role, genderRequirement string) ([]db.Staff, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+staffColumns+`
		FROM staff
		WHERE organisation_id = $1
		  AND role = $2
		  AND active
		  AND ($3 = 'any' OR $3 = '' OR gender = $3)
		ORDER BY id
	`, organisationID, role, genderRequirement)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer rows.Close()

	return collectStaff(rows)
}

func collectStaff(rows pgx.Rows) ([]db.Staff, error) {
	var staff []db.Staff
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staff row: %w", err)
		}
		staff = append(staff, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staff: %w", err)
	}
	return staff, nil
}

func scanStaff(row pgx.Row) (db.Staff, error) {
	var s db.Staff
	var gender, homeWard, preferred, tier *string
	err := row.Scan(
		&s.ID, &s.OrganisationID, &s.FirstName, &s.LastName, &s.Role, &gender,
		&homeWard, &preferred, &tier, &s.ContractedHours,
		&s.TrainingComplete, &s.WellbeingScore, &s.Active,
	)
	if err != nil {
		return db.Staff{}, err
	}
	if gender != nil {
		s.Gender = *gender
	}
	if homeWard != nil {
		s.HomeWard = *homeWard
	}
	if preferred != nil {
		s.PreferredShiftType = *preferred
	}
	if tier != nil {
		s.EmploymentTier = *tier
	}
	return s, nil
}
