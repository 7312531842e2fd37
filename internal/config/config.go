// Package config provides environment-driven configuration for the digest pipeline.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// ConfigurationError represents bad or missing environment values. It is
// fatal and aborts the run before any network call.
type ConfigurationError struct {
	Message string
	Cause   error
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// Config holds everything the pipeline needs, resolved once at startup.
// The test-mode flag is threaded from here into the prompt builder and the
// research requester at construction time; nothing reads it ambiently.
type Config struct {
	GeminiAPIKey string `validate:"required"`

	SMTPHost     string `validate:"required"`
	SMTPPort     int    `validate:"required,min=1,max=65535"`
	SMTPUser     string
	SMTPPassword string

	From       string   `validate:"required,email"`
	Recipients []string `validate:"required,min=1,dive,email"`

	// Schedule optionally restricts runs to the listed weekday
	// abbreviations (e.g. "mon,wed,fri"). Empty means every day.
	Schedule []string

	TestMode bool
}

// FromEnv builds a Config from environment variables.
//
// GEMINI_API_KEY, SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASSWORD,
// DIGEST_FROM, DIGEST_RECIPIENTS (comma-separated), DIGEST_SCHEDULE
// (optional comma-separated weekday abbreviations), DIGEST_TEST_MODE.
func FromEnv() (*Config, error) {
	cfg := &Config{
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		From:         os.Getenv("DIGEST_FROM"),
		Recipients:   splitList(os.Getenv("DIGEST_RECIPIENTS")),
		Schedule:     splitList(os.Getenv("DIGEST_SCHEDULE")),
		TestMode:     parseBool(os.Getenv("DIGEST_TEST_MODE")),
	}

	portStr := os.Getenv("SMTP_PORT")
	if portStr == "" {
		cfg.SMTPPort = 587
	} else {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, &ConfigurationError{
				Message: fmt.Sprintf("SMTP_PORT %q is not a number", portStr),
				Cause:   err,
			}
		}
		cfg.SMTPPort = port
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return &ConfigurationError{
			Message: "invalid environment configuration",
			Cause:   err,
		}
	}
	for _, day := range c.Schedule {
		if !validWeekday(day) {
			return &ConfigurationError{
				Message: fmt.Sprintf("DIGEST_SCHEDULE contains unknown weekday %q", day),
			}
		}
	}
	return nil
}

// ScheduledFor reports whether a run should proceed on the given date.
// An empty schedule allows every day.
func (c *Config) ScheduledFor(t time.Time) bool {
	if len(c.Schedule) == 0 {
		return true
	}
	today := weekdayAbbrev(t.Weekday())
	for _, day := range c.Schedule {
		if strings.EqualFold(strings.TrimSpace(day), today) {
			return true
		}
	}
	return false
}

// weekdayAbbrev returns the lowercase three-letter weekday abbreviation.
func weekdayAbbrev(wd time.Weekday) string {
	return strings.ToLower(wd.String()[:3])
}

func validWeekday(day string) bool {
	switch strings.ToLower(strings.TrimSpace(day)) {
	case "mon", "tue", "wed", "thu", "fri", "sat", "sun":
		return true
	}
	return false
}

// splitList splits a comma-separated env value, trimming whitespace and
// dropping empty entries.
func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseBool(value string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	return err == nil && b
}
