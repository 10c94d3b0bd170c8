package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// ShiftTemplate defines a recurring shift expanded by the seed-shifts
// command. The rrule drives the dates; each occurrence becomes one shift
// row with the given time window.
type ShiftTemplate struct {
	RRule        string `yaml:"rrule" validate:"required"`
	EmployeeID   string `yaml:"employeeId" validate:"required"`
	EmployeeName string `yaml:"employeeName" validate:"required"`
	StartTime    string `yaml:"startTime" validate:"required,datetime=15:04"`
	EndTime      string `yaml:"endTime" validate:"required,datetime=15:04"`
	Count        int    `yaml:"count,omitempty" validate:"omitempty,min=1"`
}

// Config represents the application configuration
type Config struct {
	ListenAddr      string          `yaml:"listenAddr" validate:"required"`
	DatabaseURL     string          `yaml:"databaseURL" validate:"required"`
	JWTSecret       string          `yaml:"jwtSecret" validate:"required,min=16"`
	TokenTTLMinutes int             `yaml:"tokenTTLMinutes" validate:"required,min=1"`
	ShiftTemplates  []ShiftTemplate `yaml:"shiftTemplates,omitempty" validate:"dive"`
}

// TokenTTL returns the access token lifetime as a duration
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from schedule_manager_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
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

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, template := range cfg.ShiftTemplates {
		if _, err := rrule.StrToRRule(template.RRule); err != nil {
			return fmt.Errorf("invalid rrule in shiftTemplates[%d]: %w", i, err)
		}
	}

	return nil
}

// findConfigFile searches for schedule_manager_config.yaml in current directory and home directory
func findConfigFile() (string, error) {
	configFileName := "schedule_manager_config.yaml"

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
