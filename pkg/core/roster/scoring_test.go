package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func permanentNurse() StaffProfile {
	return StaffProfile{
		ID:                 "staff-a",
		OrganisationID:     "org-1",
		HomeWard:           "Alder",
		PreferredShiftType: ShiftTypeDay,
		EmploymentTier:     TierPermanent,
		ContractedHours:    37.5,
		TrainingComplete:   boolPtr(true),
		WellbeingScore:     80,
	}
}

func TestScore_PermanentHomeWardDayPreference(t *testing.T) {
	// 40 (permanent) + 30 (home ward) + 15 (day preference)
	// + 35 (12h / 37.5h contracted = 32% utilization) + 5 (wellbeing 80)
	result := Score(permanentNurse(), testDayShift(), nil, DefaultPolicy())

	assert.Equal(t, 125.0, result.Score)
	require.Len(t, result.Reasons, 5)
	assert.Equal(t, "permanent staff priority (+40)", result.Reasons[0])
	assert.Equal(t, "home ward match: Alder (+30)", result.Reasons[1])
	assert.Equal(t, "prefers day shifts (+15)", result.Reasons[2])
	assert.Equal(t, "under contracted hours (32% utilized) (+35)", result.Reasons[3])
	assert.Equal(t, "high wellbeing score (80) (+5)", result.Reasons[4])
}

func TestScore_AgencyCrossWardMismatch(t *testing.T) {
	profile := StaffProfile{
		ID:                 "staff-b",
		HomeWard:           "Redwood",
		PreferredShiftType: ShiftTypeNight,
		EmploymentTier:     TierAgency,
		WellbeingScore:     50,
	}

	// 5 (agency) + 5 (known ward, no match) - 5 (prefers night)
	// + 10 (12h projected week is light); wellbeing 50 is neutral.
	result := Score(profile, testDayShift(), nil, DefaultPolicy())

	assert.Equal(t, 15.0, result.Score)
	assert.Contains(t, result.Reasons, "cross-ward cover from Redwood (+5)")
	assert.Contains(t, result.Reasons, "prefers night shifts, this is day (-5)")
}

func TestScore_FlexiblePreference(t *testing.T) {
	profile := permanentNurse()
	profile.PreferredShiftType = PreferenceAny

	result := Score(profile, testDayShift(), nil, DefaultPolicy())
	assert.Contains(t, result.Reasons, "flexible on shift type (+10)")
}

func TestScore_PermanentUtilizationBands(t *testing.T) {
	policy := DefaultPolicy()

	// 24h committed + 12h shift against 37.5h contract: 96%.
	within := []Commitment{
		hoursOnDay("2026-04-02", 12),
		hoursOnDay("2026-04-03", 12),
	}
	result := Score(permanentNurse(), testDayShift(), within, policy)
	assert.Contains(t, result.Reasons, "within contracted hours (96% utilized) (+20)")

	// 36h committed + 12h shift against a 30h contract: 160%.
	over := append(within, hoursOnDay("2026-04-04", 12))
	profile := permanentNurse()
	profile.ContractedHours = 30
	result = Score(profile, testDayShift(), over, policy)
	assert.Contains(t, result.Reasons, "over contracted hours (160% utilized) (-10)")
}

func TestScore_NonPermanentWeeklyBands(t *testing.T) {
	profile := StaffProfile{ID: "staff-c", EmploymentTier: TierBank}

	// 40h committed + 12h shift = 52h.
	heavy := []Commitment{
		hoursOnDay("2026-04-02", 10),
		hoursOnDay("2026-04-03", 10),
		hoursOnDay("2026-04-04", 10),
		hoursOnDay("2026-04-05", 10),
	}
	result := Score(profile, testDayShift(), heavy, DefaultPolicy())
	assert.Contains(t, result.Reasons, "heavy week (52.0h) (-10)")

	// 24h committed + 12h: neutral band, no hours reason.
	moderate := heavy[:2]
	result = Score(profile, testDayShift(), moderate, DefaultPolicy())
	for _, reason := range result.Reasons {
		assert.NotContains(t, reason, "week")
	}
}

func TestScore_WellbeingAdjustment(t *testing.T) {
	profile := permanentNurse()

	profile.WellbeingScore = 20
	result := Score(profile, testDayShift(), nil, DefaultPolicy())
	assert.Contains(t, result.Reasons, "low wellbeing score (20) (-5)")

	profile.WellbeingScore = 0
	result = Score(profile, testDayShift(), nil, DefaultPolicy())
	for _, reason := range result.Reasons {
		assert.NotContains(t, reason, "wellbeing")
	}
}

func TestScore_Deterministic(t *testing.T) {
	commitments := []Commitment{hoursOnDay("2026-04-03", 8)}

	first := Score(permanentNurse(), testDayShift(), commitments, DefaultPolicy())
	second := Score(permanentNurse(), testDayShift(), commitments, DefaultPolicy())

	assert.Equal(t, first.Score, second.Score)
	assert.Equal(t, first.Reasons, second.Reasons)
}

func TestScore_WeightsArePolicy(t *testing.T) {
	policy := DefaultPolicy()
	policy.Weights.TierPermanent = 100

	result := Score(permanentNurse(), testDayShift(), nil, DefaultPolicy())
	boosted := Score(permanentNurse(), testDayShift(), nil, policy)

	assert.Equal(t, result.Score+60, boosted.Score)
	assert.Contains(t, boosted.Reasons, "permanent staff priority (+100)")
}
