package config

import (
	"fmt"
	"strings"
)

const (
	// FormatJSON selects JSON log events.
	FormatJSON = "json"
	// FormatText selects single-line text log events.
	FormatText = "text"
)

// Validate checks if the configuration is valid
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateEnvVar()...)
	errors = append(errors, c.validateNvidiaSMI()...)
	errors = append(errors, c.validateDistro()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

func (c *Config) validateEnvVar() []ValidationError {
	if isValidEnvName(c.EnvVar) {
		return nil
	}
	return []ValidationError{{
		Path:    "env_var",
		Message: fmt.Sprintf("must be a valid environment variable name, got '%s'", c.EnvVar),
	}}
}

func (c *Config) validateNvidiaSMI() []ValidationError {
	if strings.TrimSpace(c.NvidiaSMI.Binary) != "" {
		return nil
	}
	return []ValidationError{{
		Path:    "nvidia_smi.binary",
		Message: "must not be empty",
	}}
}

func (c *Config) validateDistro() []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(c.Distro.OptionalPackage) == "" {
		errors = append(errors, ValidationError{
			Path:    "distro.optional_package",
			Message: "must not be empty",
		})
	}

	if strings.TrimSpace(c.Distro.InstallCommand) == "" {
		errors = append(errors, ValidationError{
			Path:    "distro.install_command",
			Message: "must not be empty",
		})
	}

	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, c.Logging.Level) {
		errors = append(errors, ValidationError{
			Path:    "logging.level",
			Message: fmt.Sprintf("must be one of %v, got '%s'", validLevels, c.Logging.Level),
		})
	}

	validFormats := []string{FormatJSON, FormatText}
	if !contains(validFormats, c.Logging.Format) {
		errors = append(errors, ValidationError{
			Path:    "logging.format",
			Message: fmt.Sprintf("must be one of %v, got '%s'", validFormats, c.Logging.Format),
		})
	}

	return errors
}

// contains checks if a string is in a slice
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// isValidEnvName accepts POSIX-style names: a letter or underscore, then letters, digits, underscores
func isValidEnvName(name string) bool {
	if name == "" {
		return false
	}
	for i, c := range name {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
