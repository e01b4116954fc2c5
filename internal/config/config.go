package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/oakfieldcare/wardroster/pkg/core/roster"
)

const (
	configFileName = "wardroster_config.yaml"
	databaseURLEnv = "WARDROSTER_DATABASE_URL"
)

// ShiftTemplate defines a recurring staffing requirement expanded into
// concrete shifts by the generate-shifts service.
type ShiftTemplate struct {
	RRule             string `yaml:"rrule" validate:"required"`
	Ward              string `yaml:"ward" validate:"required"`
	Role              string `yaml:"role" validate:"required"`
	StartTime         string `yaml:"startTime" validate:"required"`
	EndTime           string `yaml:"endTime" validate:"required"`
	RequiredCount     int    `yaml:"requiredCount,omitempty" validate:"omitempty,min=1"`
	GenderRequirement string `yaml:"genderRequirement,omitempty" validate:"omitempty,oneof=any male female"`
}

// PolicyOverrides optionally replace individual rule thresholds.
// Unset fields keep the engine defaults.
type PolicyOverrides struct {
	MinRestHours       *float64 `yaml:"minRestHours,omitempty" validate:"omitempty,gt=0"`
	MaxConsecutiveDays *int     `yaml:"maxConsecutiveDays,omitempty" validate:"omitempty,min=1"`
	WeeklySoftHours    *float64 `yaml:"weeklySoftHours,omitempty" validate:"omitempty,gt=0"`
	WeeklyHardHours    *float64 `yaml:"weeklyHardHours,omitempty" validate:"omitempty,gt=0"`
	NightWindowDays    *int     `yaml:"nightWindowDays,omitempty" validate:"omitempty,min=1"`
	MaxNightsInWindow  *int     `yaml:"maxNightsInWindow,omitempty" validate:"omitempty,min=1"`
	DefaultShiftHours  *float64 `yaml:"defaultShiftHours,omitempty" validate:"omitempty,gt=0"`
}

// Config represents the application configuration.
type Config struct {
	OrganisationID string          `yaml:"organisationID" validate:"required"`
	RankLimit      int             `yaml:"rankLimit,omitempty" validate:"omitempty,min=1"`
	HorizonDays    int             `yaml:"horizonDays,omitempty" validate:"omitempty,min=1"`
	Policy         PolicyOverrides `yaml:"policy,omitempty"`
	ShiftTemplates []ShiftTemplate `yaml:"shiftTemplates,omitempty" validate:"dive"`

	// DatabaseURL comes from the environment, never the config file.
	DatabaseURL string `yaml:"-"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from wardroster_config.yaml,
// looking in the current directory first and then the user's home
// directory. The database URL is read from WARDROSTER_DATABASE_URL,
// with a .env file honoured if present.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	// Missing .env is fine; the variable may be set directly.
	_ = godotenv.Load()
	cfg.DatabaseURL = os.Getenv(databaseURLEnv)

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, tmpl := range cfg.ShiftTemplates {
		if _, err := rrule.StrToRRule(tmpl.RRule); err != nil {
			return fmt.Errorf("invalid rrule in shiftTemplates[%d]: %w", i, err)
		}
	}

	if cfg.Policy.WeeklySoftHours != nil && cfg.Policy.WeeklyHardHours != nil &&
		*cfg.Policy.WeeklySoftHours > *cfg.Policy.WeeklyHardHours {
		return fmt.Errorf("config validation failed: weeklySoftHours must not exceed weeklyHardHours")
	}

	return nil
}

// BuildPolicy applies the configured overrides on top of the engine
// defaults.
func (cfg *Config) BuildPolicy() roster.Policy {
	policy := roster.DefaultPolicy()

	if v := cfg.Policy.MinRestHours; v != nil {
		policy.MinRestHours = *v
	}
	if v := cfg.Policy.MaxConsecutiveDays; v != nil {
		policy.MaxConsecutiveDays = *v
	}
	if v := cfg.Policy.WeeklySoftHours; v != nil {
		policy.WeeklySoftHours = *v
	}
	if v := cfg.Policy.WeeklyHardHours; v != nil {
		policy.WeeklyHardHours = *v
	}
	if v := cfg.Policy.NightWindowDays; v != nil {
		policy.NightWindowDays = *v
	}
	if v := cfg.Policy.MaxNightsInWindow; v != nil {
		policy.MaxNightsInWindow = *v
	}
	if v := cfg.Policy.DefaultShiftHours; v != nil {
		policy.DefaultShiftDuration = time.Duration(*v * float64(time.Hour))
	}

	return policy
}

// findConfigFile searches for the config file in the current directory
// and the home directory.
func findConfigFile() (string, error) {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
