package db

// Staff is a staff directory row.
type Staff struct {
	ID                 string
	OrganisationID     string
	FirstName          string
	LastName           string
	Role               string
	Gender             string
	HomeWard           string
	PreferredShiftType string
	EmploymentTier     string
	ContractedHours    float64
	TrainingComplete   *bool // null when compliance has not been recorded
	WellbeingScore     int
	Active             bool
}

// Shift is a staffing requirement row.
type Shift struct {
	ID                string
	OrganisationID    string
	Ward              string
	RoleRequired      string
	GenderRequirement string
	RequiredCount     int
	FilledCount       int
	ShiftDate         string // YYYY-MM-DD
	StartTime         string // HH:MM
	EndTime           string // HH:MM
	Status            string
}

// Assignment links a staff member to a shift they have accepted.
type Assignment struct {
	ID         string
	ShiftID    string
	StaffID    string
	AssignedBy string
	Overridden bool
}

// Commitment is the read-only join of a staff member's assignments to
// the shifts they cover. It is what the eligibility engine sees, never
// the live shift rows.
type Commitment struct {
	ShiftDate    string
	StartTime    string
	EndTime      string
	Ward         string
	RoleRequired string
}
