package config

import (
	"fmt"
	"strings"

	"github.com/aegisarch/cli/internal/aggregator"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString("config validation failed:\n")
	for _, err := range e {
		sb.WriteString(fmt.Sprintf("  %s: %s\n", err.Field, err.Message))
	}
	return sb.String()
}

// Validate checks values that cannot be enforced by decoding alone.
func (c *Config) Validate() error {
	var errs ValidationErrors

	if _, err := aggregator.ParseMatch(c.Aggregators.Match); err != nil {
		errs = append(errs, ValidationError{
			Field:   "aggregators.match",
			Message: fmt.Sprintf("must be %q or %q, got %q", aggregator.MatchSubstring, aggregator.MatchLine, c.Aggregators.Match),
		})
	}

	if strings.TrimSpace(c.ArchetypesDir) != c.ArchetypesDir {
		errs = append(errs, ValidationError{
			Field:   "archetypesDir",
			Message: "must not have leading or trailing whitespace",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateFile loads the config file at path and validates it.
func ValidateFile(path string) error {
	cfg, err := NewLoader().Load(path)
	if err != nil {
		return err
	}
	return cfg.Validate()
}
