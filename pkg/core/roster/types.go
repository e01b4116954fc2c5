package roster

// ShiftType classifies when a shift falls within the working day.
type ShiftType string

const (
	ShiftTypeDay     ShiftType = "day"
	ShiftTypeNight   ShiftType = "night"
	ShiftTypeUnknown ShiftType = "unknown"
)

// EmploymentTier is a staff member's contractual relationship with the organisation.
type EmploymentTier string

const (
	TierPermanent EmploymentTier = "permanent"
	TierBank      EmploymentTier = "bank"
	TierAgency    EmploymentTier = "agency"
)

// GenderRequirement restricts which staff may fill a shift.
type GenderRequirement string

const (
	GenderAny    GenderRequirement = "any"
	GenderMale   GenderRequirement = "male"
	GenderFemale GenderRequirement = "female"
)

// ShiftStatus tracks whether a shift still needs staff.
type ShiftStatus string

const (
	ShiftOpen   ShiftStatus = "open"
	ShiftFilled ShiftStatus = "filled"
)

// Shift is a single staffing requirement for a ward/role/time window.
// The engine treats it as a read-only snapshot supplied by the caller.
type Shift struct {
	ID                string
	OrganisationID    string
	Ward              string
	RoleRequired      string
	GenderRequirement GenderRequirement
	RequiredCount     int
	FilledCount       int
	Date              string // YYYY-MM-DD
	StartTime         string // HH:MM, 24h
	EndTime           string // HH:MM, 24h
	Status            ShiftStatus
}

// StaffProfile is the subset of a staff record the engine needs to
// evaluate and score a candidate.
type StaffProfile struct {
	ID                 string
	OrganisationID     string
	HomeWard           string
	PreferredShiftType ShiftType // "day", "night" or "any" semantics; empty means unknown
	EmploymentTier     EmploymentTier
	ContractedHours    float64 // per week
	TrainingComplete   *bool   // nil when compliance status is unknown
	WellbeingScore     int     // 0..100; <=0 means not recorded
}

// PreferenceAny marks a staff member with no day/night preference.
const PreferenceAny ShiftType = "any"

// Commitment is an existing accepted assignment, snapshotted from
// storage so the engine never touches live shift rows.
type Commitment struct {
	ShiftDate    string // YYYY-MM-DD
	StartTime    string // HH:MM
	EndTime      string // HH:MM
	Ward         string
	RoleRequired string
}

// Rule identifies one of the independent eligibility predicates.
type Rule string

const (
	RuleDoubleBooking   Rule = "double_booking"
	RuleRestPeriod      Rule = "rest_period"
	RuleConsecutiveDays Rule = "consecutive_days"
	RuleWeeklyHours     Rule = "weekly_hours"
	RuleNightCap        Rule = "night_cap"
	RuleTraining        Rule = "training"
)

// EligibilityVerdict is the outcome of a single rule for one candidate.
// OK verdicts may still carry a warning in Details (soft thresholds and
// manager overrides surface there without blocking).
type EligibilityVerdict struct {
	Rule    Rule
	OK      bool
	Reason  string
	Details map[string]string
}

// Warning detail keys attached to non-blocking verdicts.
const (
	DetailWarning = "warning"

	WarningWorkingTime      = "working_time_directive"
	WarningTrainingOverride = "training_override"
)

// ScoreResult is the additive desirability score for a (candidate, shift)
// pair. Reasons are appended in evaluation order and are part of the
// contract: callers display them as "why chosen" / "why not".
type ScoreResult struct {
	Score   float64
	Reasons []string
}

// Candidate pairs a staff profile with their existing commitments for
// one ranking call.
type Candidate struct {
	Profile     StaffProfile
	Commitments []Commitment
}

// RankedCandidate is one candidate's full evaluation result.
type RankedCandidate struct {
	StaffID    string
	Score      float64
	Eligible   bool
	Reasons    []string
	Violations []EligibilityVerdict
}

// RankingResult holds the ranked pool. AllRanked always contains every
// candidate so a reviewer has full context; EligibleTop is the eligible
// subset truncated to the requested limit.
type RankingResult struct {
	EligibleTop []RankedCandidate
	AllRanked   []RankedCandidate
}
