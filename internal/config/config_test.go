package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		ListenAddr:  ":8080",
		DatabaseURL: "postgres://localhost:5432/schedule_manager",
		JWTSecret:   "a-secret-long-enough-for-validation",
		TokenTTLMinutes: 15,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := validConfig()
	cfg.ShiftTemplates = []ShiftTemplate{
		{
			RRule:        "FREQ=WEEKLY;BYDAY=MO,WE",
			EmployeeID:   "emp-1",
			EmployeeName: "Erin Example",
			StartTime:    "09:00",
			EndTime:      "17:00",
			Count:        8,
		},
	}

	assert.NoError(t, Validate(cfg))
}

func TestValidate_MinimalConfig(t *testing.T) {
	assert.NoError(t, Validate(validConfig()))
}

func TestValidate_MissingRequiredField(t *testing.T) {
	cfg := validConfig()
	cfg.DatabaseURL = ""

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_ShortSecret(t *testing.T) {
	cfg := validConfig()
	cfg.JWTSecret = "short"

	assert.Error(t, Validate(cfg))
}

func TestValidate_InvalidRRule(t *testing.T) {
	cfg := validConfig()
	cfg.ShiftTemplates = []ShiftTemplate{
		{
			RRule:        "INVALID_RRULE_SYNTAX",
			EmployeeID:   "emp-1",
			EmployeeName: "Erin Example",
			StartTime:    "09:00",
			EndTime:      "17:00",
		},
	}

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rrule")
}

func TestValidate_BadTemplateTime(t *testing.T) {
	cfg := validConfig()
	cfg.ShiftTemplates = []ShiftTemplate{
		{
			RRule:        "FREQ=WEEKLY",
			EmployeeID:   "emp-1",
			EmployeeName: "Erin Example",
			StartTime:    "9am",
			EndTime:      "17:00",
		},
	}

	assert.Error(t, Validate(cfg))
}

func TestLoadFromPath(t *testing.T) {
	content := `
listenAddr: ":8080"
databaseURL: "postgres://localhost:5432/schedule_manager"
jwtSecret: "a-secret-long-enough-for-validation"
tokenTTLMinutes: 15
shiftTemplates:
  - rrule: "FREQ=WEEKLY;BYDAY=SA"
    employeeId: "emp-1"
    employeeName: "Erin Example"
    startTime: "10:00"
    endTime: "18:00"
`
	path := filepath.Join(t.TempDir(), "schedule_manager_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL())
	require.Len(t, cfg.ShiftTemplates, 1)
	assert.Equal(t, "FREQ=WEEKLY;BYDAY=SA", cfg.ShiftTemplates[0].RRule)
}

func TestLoadFromPath_MissingFile(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
