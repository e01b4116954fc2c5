package postgres

import (
	"context"
	"fmt"

	"github.com/oakfieldcare/wardroster/pkg/db"
)

// InsertAssignment records an accepted assignment.
func (d *DB) InsertAssignment(ctx context.Context, a db.Assignment) error {
	var assignedBy *string
	if a.AssignedBy != "" {
		assignedBy = &a.AssignedBy
	}

	_, err := d.pool.Exec(ctx, `
		INSERT INTO assignment (id, shift_id, staff_id, assigned_by, overridden)
		VALUES ($1, $2, $3, $4, $5)
	`, a.ID, a.ShiftID, a.StaffID, assignedBy, a.Overridden)
	if err != nil {
		return fmt.Errorf("failed to insert assignment: %w", err)
	}
	return nil
}

// GetCommitments retrieves a staff member's existing commitments as
// read-only snapshots of the shifts they are assigned to.
func (d *DB) GetCommitments(ctx context.Context, staffID string) ([]db.Commitment, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT s.shift_date, COALESCE(s.start_time, ''), COALESCE(s.end_time, ''),
			s.ward, s.role_required
		FROM assignment a
		JOIN shift s ON s.id = a.shift_id
		WHERE a.staff_id = $1
		ORDER BY s.shift_date, s.start_time
	`, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to query commitments: %w", err)
	}
	defer rows.Close()

	var commitments []db.Commitment
	for rows.Next() {
		var c db.Commitment
		if err := rows.Scan(&c.ShiftDate, &c.StartTime, &c.EndTime, &c.Ward, &c.RoleRequired); err != nil {
			return nil, fmt.Errorf("failed to scan commitment: %w", err)
		}
		commitments = append(commitments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating commitments: %w", err)
	}

	return commitments, nil
}
