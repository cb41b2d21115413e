package config

import (
	"fmt"
	"os"
	"strconv"

	sErrors "github.com/ArianeUwase1/DS5010-Final-Project-Team8/errors"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	// DefaultPort is used when PORT is unset
	DefaultPort = "8080"
	// DefaultEnvFile is read by Load when no other files are given
	DefaultEnvFile = ".env"
)

// Config is read from the environment. Values are validated by Validate.
type Config struct {
	Port        string
	Development string
	ClampGoals  string
	RulesFile   string
}

// Load reads envFiles into the environment, then returns the resulting Config.
// Missing files are ignored and variables already set in the environment take precedence.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}
	for _, file := range envFiles {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return nil, errors.Wrapf(err, "Error loading environment file '%s'", file)
		}
	}

	return &Config{
		Port:        getEnv("PORT", DefaultPort),
		Development: getEnv("DEVELOPMENT", "false"),
		ClampGoals:  getEnv("CLAMP_GOALS", "false"),
		RulesFile:   os.Getenv("RULES_FILE"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Validate returns all problems with c, one per line
func (c *Config) Validate() error {
	var errs sErrors.Errors
	if port, err := strconv.ParseUint(c.Port, 10, 16); err != nil || port == 0 {
		errs.Add(&sErrors.SettingError{Name: "PORT", Value: c.Port, Reason: "must be a number between 1 and 65535"})
	}
	if _, err := strconv.ParseBool(c.Development); err != nil {
		errs.Add(&sErrors.SettingError{Name: "DEVELOPMENT", Value: c.Development, Reason: "must be true or false"})
	}
	if _, err := strconv.ParseBool(c.ClampGoals); err != nil {
		errs.Add(&sErrors.SettingError{Name: "CLAMP_GOALS", Value: c.ClampGoals, Reason: "must be true or false"})
	}
	if c.RulesFile != "" {
		if _, err := os.Stat(c.RulesFile); err != nil {
			errs.Add(&sErrors.SettingError{Name: "RULES_FILE", Value: c.RulesFile, Reason: "file not found"})
		}
	}
	return errs.Err()
}

// Addr is the server's listen address
func (c *Config) Addr() string {
	return fmt.Sprintf("0.0.0.0:%s", c.Port)
}

// IsDevelopment returns true if development logging is enabled
func (c *Config) IsDevelopment() bool {
	b, _ := strconv.ParseBool(c.Development)
	return b
}

// Clamp returns true if goal contributions should be capped at each goal's target
func (c *Config) Clamp() bool {
	b, _ := strconv.ParseBool(c.ClampGoals)
	return b
}
