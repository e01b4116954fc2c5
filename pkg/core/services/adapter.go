package services

import (
	"github.com/oakfieldcare/wardroster/pkg/core/roster"
	"github.com/oakfieldcare/wardroster/pkg/db"
)

// The persistence layer hands back loosely-shaped rows; everything is
// mapped into the engine's strongly-typed records here so the core
// stays free of storage assumptions.

func profileFromRow(row db.Staff) roster.StaffProfile {
	return roster.StaffProfile{
		ID:                 row.ID,
		OrganisationID:     row.OrganisationID,
		HomeWard:           row.HomeWard,
		PreferredShiftType: roster.ShiftType(row.PreferredShiftType),
		EmploymentTier:     roster.EmploymentTier(row.EmploymentTier),
		ContractedHours:    row.ContractedHours,
		TrainingComplete:   row.TrainingComplete,
		WellbeingScore:     row.WellbeingScore,
	}
}

func shiftFromRow(row db.Shift) roster.Shift {
	return roster.Shift{
		ID:                row.ID,
		OrganisationID:    row.OrganisationID,
		Ward:              row.Ward,
		RoleRequired:      row.RoleRequired,
		GenderRequirement: roster.GenderRequirement(row.GenderRequirement),
		RequiredCount:     row.RequiredCount,
		FilledCount:       row.FilledCount,
		Date:              row.ShiftDate,
		StartTime:         row.StartTime,
		EndTime:           row.EndTime,
		Status:            roster.ShiftStatus(row.Status),
	}
}

func commitmentsFromRows(rows []db.Commitment) []roster.Commitment {
	commitments := make([]roster.Commitment, 0, len(rows))
	for _, row := range rows {
		commitments = append(commitments, roster.Commitment{
			ShiftDate:    row.ShiftDate,
			StartTime:    row.StartTime,
			EndTime:      row.EndTime,
			Ward:         row.Ward,
			RoleRequired: row.RoleRequired,
		})
	}
	return commitments
}
