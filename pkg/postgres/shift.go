package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/oakfieldcare/wardroster/pkg/db"
)

const shiftColumns = `id, organisation_id, ward, role_required, gender_requirement,
	required_count, filled_count, shift_date, start_time, end_time, status`

// GetShift retrieves a single shift by ID.
func (d *DB) GetShift(ctx context.Context, id string) (db.Shift, error) {
	row := d.pool.QueryRow(ctx, `SELECT `+shiftColumns+` FROM shift WHERE id = $1`, id)

	s, err := scanShift(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.Shift{}, fmt.Errorf("shift %s not found", id)
	}
	if err != nil {
		return db.Shift{}, fmt.Errorf("failed to query shift: %w", err)
	}
	return s, nil
}

// ListShifts retrieves all shifts for an organisation, soonest first.
func (d *DB) ListShifts(ctx context.Context, organisationID string) ([]db.Shift, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+shiftColumns+`
		FROM shift
		WHERE organisation_id = $1
		ORDER BY shift_date, start_time
	`, organisationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query shifts: %w", err)
	}
	defer rows.Close()

	var shifts []db.Shift
	for rows.Next() {
		s, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift row: %w", err)
		}
		shifts = append(shifts, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shifts: %w", err)
	}
	return shifts, nil
}

// InsertShifts inserts shift rows in one transaction.
func (d *DB) InsertShifts(ctx context.Context, shifts []db.Shift) error {
	if len(shifts) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, s := range shifts {
		_, err := tx.Exec(ctx, `
			INSERT INTO shift (id, organisation_id, ward, role_required, gender_requirement,
				required_count, filled_count, shift_date, start_time, end_time, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		`, s.ID, s.OrganisationID, s.Ward, s.RoleRequired, s.GenderRequirement,
			s.RequiredCount, s.FilledCount, s.ShiftDate, s.StartTime, s.EndTime, s.Status)
		if err != nil {
			return fmt.Errorf("failed to insert shift %s: %w", s.ID, err)
		}
	}

	return tx.Commit(ctx)
}

// UpdateShiftFilled sets a shift's filled count and status.
func (d *DB) UpdateShiftFilled(ctx context.Context, shiftID string, filledCount int, status string) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE shift SET filled_count = $2, status = $3 WHERE id = $1
	`, shiftID, filledCount, status)
	if err != nil {
		return fmt.Errorf("failed to update shift %s: %w", shiftID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shift %s not found", shiftID)
	}
	return nil
}

func scanShift(row pgx.Row) (db.Shift, error) {
	var s db.Shift
	var startTime, endTime *string
	err := row.Scan(
		&s.ID, &s.OrganisationID, &s.Ward, &s.RoleRequired, &s.GenderRequirement,
		&s.RequiredCount, &s.FilledCount, &s.ShiftDate, &startTime, &endTime, &s.Status,
	)
	if err != nil {
		return db.Shift{}, err
	}
	if startTime != nil {
		s.StartTime = *startTime
	}
	if endTime != nil {
		s.EndTime = *endTime
	}
	return s, nil
}
