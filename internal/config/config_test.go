package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wardroster_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromPath(t *testing.T) {
	t.Setenv("WARDROSTER_DATABASE_URL", "postgres://localhost/wardroster_test")

	path := writeConfig(t, `
organisationID: org-1
rankLimit: 3
horizonDays: 14
policy:
  minRestHours: 12
  maxNightsInWindow: 3
shiftTemplates:
  - rrule: "FREQ=WEEKLY;BYDAY=MO,WE,FR"
    ward: Alder
    role: Registered Nurse
    startTime: "07:30"
    endTime: "19:30"
    requiredCount: 2
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "org-1", cfg.OrganisationID)
	assert.Equal(t, 3, cfg.RankLimit)
	assert.Equal(t, 14, cfg.HorizonDays)
	assert.Equal(t, "postgres://localhost/wardroster_test", cfg.DatabaseURL)

	require.Len(t, cfg.ShiftTemplates, 1)
	assert.Equal(t, 2, cfg.ShiftTemplates[0].RequiredCount)
}

func TestLoadFromPath_MissingOrganisation(t *testing.T) {
	path := writeConfig(t, `rankLimit: 3`)

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFromPath_InvalidRRule(t *testing.T) {
	path := writeConfig(t, `
organisationID: org-1
shiftTemplates:
  - rrule: "FREQ=SOMETIMES"
    ward: Alder
    role: Registered Nurse
    startTime: "07:30"
    endTime: "19:30"
`)

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rrule")
}

func TestValidate_SoftAboveHardRejected(t *testing.T) {
	soft, hard := 80.0, 72.0
	cfg := &Config{
		OrganisationID: "org-1",
		Policy:         PolicyOverrides{WeeklySoftHours: &soft, WeeklyHardHours: &hard},
	}

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weeklySoftHours")
}

func TestBuildPolicy_Defaults(t *testing.T) {
	cfg := &Config{OrganisationID: "org-1"}

	policy := cfg.BuildPolicy()
	assert.Equal(t, 11.0, policy.MinRestHours)
	assert.Equal(t, 6, policy.MaxConsecutiveDays)
	assert.Equal(t, 48.0, policy.WeeklySoftHours)
	assert.Equal(t, 72.0, policy.WeeklyHardHours)
	assert.Equal(t, 12*time.Hour, policy.DefaultShiftDuration)
}

func TestBuildPolicy_Overrides(t *testing.T) {
	rest := 12.0
	nights := 3
	shiftHours := 8.0
	cfg := &Config{
		OrganisationID: "org-1",
		Policy: PolicyOverrides{
			MinRestHours:      &rest,
			MaxNightsInWindow: &nights,
			DefaultShiftHours: &shiftHours,
		},
	}

	policy := cfg.BuildPolicy()
	assert.Equal(t, 12.0, policy.MinRestHours)
	assert.Equal(t, 3, policy.MaxNightsInWindow)
	assert.Equal(t, 8*time.Hour, policy.DefaultShiftDuration)

	// Untouched thresholds keep their defaults.
	assert.Equal(t, 72.0, policy.WeeklyHardHours)
}
