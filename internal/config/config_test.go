package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"EnvVar", cfg.EnvVar, "CONDA_DEFAULT_ENV"},
		{"Binary", cfg.NvidiaSMI.Binary, "nvidia-smi"},
		{"ShowOutput", cfg.NvidiaSMI.ShowOutput, false},
		{"OptionalPackage", cfg.Distro.OptionalPackage, "lsb-release"},
		{"InstallCommand", cfg.Distro.InstallCommand, "apt-get install"},
		{"LogLevel", cfg.Logging.Level, "warn"},
		{"LogFormat", cfg.Logging.Format, "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("DefaultConfig().%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestValidation_ValidConfig(t *testing.T) {
	cfg := DefaultConfig()
	errors := cfg.Validate()

	if len(errors) != 0 {
		t.Errorf("Validate() on default config returned errors: %v", errors)
	}
}

func TestValidation_InvalidEnvVar(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
	}{
		{"empty", ""},
		{"leading digit", "1ENV"},
		{"dash", "CONDA-ENV"},
		{"space", "CONDA ENV"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.EnvVar = tt.envVar

			errors := cfg.Validate()
			if len(errors) != 1 || errors[0].Path != "env_var" {
				t.Errorf("Validate() = %v, want single env_var error", errors)
			}
		})
	}
}

func TestValidation_ValidEnvVars(t *testing.T) {
	for _, name := range []string{"CONDA_DEFAULT_ENV", "VIRTUAL_ENV", "_X", "env2"} {
		cfg := DefaultConfig()
		cfg.EnvVar = name
		if errors := cfg.Validate(); len(errors) != 0 {
			t.Errorf("Validate() for %q returned errors: %v", name, errors)
		}
	}
}

func TestValidation_EmptyBinary(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NvidiaSMI.Binary = "  "

	errors := cfg.Validate()
	if len(errors) == 0 {
		t.Error("Validate() should return error for empty nvidia_smi.binary")
	}
}

func TestValidation_EmptyDistroHints(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Distro.OptionalPackage = ""
	cfg.Distro.InstallCommand = ""

	errors := cfg.Validate()
	if len(errors) != 2 {
		t.Errorf("Validate() returned %d errors, want 2: %v", len(errors), errors)
	}
}

func TestValidation_InvalidLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "trace"

	errors := cfg.Validate()
	if len(errors) == 0 {
		t.Error("Validate() should return error for invalid log level")
	}
}

func TestValidation_InvalidLogFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Format = "xml"

	errors := cfg.Validate()
	if len(errors) == 0 {
		t.Error("Validate() should return error for invalid log format")
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
env_var: VIRTUAL_ENV
nvidia_smi:
  binary: /usr/bin/nvidia-smi
  show_output: true
logging:
  level: debug
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o600); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.EnvVar != "VIRTUAL_ENV" {
		t.Errorf("EnvVar = %s, want VIRTUAL_ENV", cfg.EnvVar)
	}
	if cfg.NvidiaSMI.Binary != "/usr/bin/nvidia-smi" {
		t.Errorf("Binary = %s, want /usr/bin/nvidia-smi", cfg.NvidiaSMI.Binary)
	}
	if !cfg.NvidiaSMI.ShowOutput {
		t.Error("ShowOutput = false, want true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("LogLevel = %s, want debug", cfg.Logging.Level)
	}

	// Verify defaults are preserved for unspecified fields
	if cfg.Distro.OptionalPackage != "lsb-release" {
		t.Errorf("OptionalPackage = %s, want lsb-release (default)", cfg.Distro.OptionalPackage)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("LogFormat = %s, want text (default)", cfg.Logging.Format)
	}
}

func TestLoadFrom_InvalidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	invalidContent := `
env_var: "not valid"
logging:
  format: xml
`
	if err := os.WriteFile(configPath, []byte(invalidContent), 0o600); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	_, err := LoadFrom(configPath)
	if err == nil {
		t.Fatal("LoadFrom() should return error for invalid config")
	}
	if !strings.Contains(err.Error(), "2 validation errors") {
		t.Errorf("LoadFrom() error = %v, want two validation errors", err)
	}
}

func TestLoadFrom_NonexistentFile(t *testing.T) {
	_, err := LoadFrom("/nonexistent/config.yaml")
	if err == nil {
		t.Error("LoadFrom() should return error for nonexistent file")
	}
}

func TestLoadFrom_MalformedYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	malformedContent := `
env_var: CONDA_DEFAULT_ENV
  invalid_indentation: value
logging: text
`
	if err := os.WriteFile(configPath, []byte(malformedContent), 0o600); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	_, err := LoadFrom(configPath)
	if err == nil {
		t.Error("LoadFrom() should return error for malformed YAML")
	}
}

func TestLoad_SystemThenUser(t *testing.T) {
	systemDir := t.TempDir()
	homeDir := t.TempDir()
	t.Setenv("ENVREPORT_CONFIG_DIR", systemDir)
	t.Setenv("HOME", homeDir)

	systemContent := `
env_var: VIRTUAL_ENV
nvidia_smi:
  show_output: true
`
	if err := os.WriteFile(filepath.Join(systemDir, "config.yaml"), []byte(systemContent), 0o600); err != nil {
		t.Fatal(err)
	}

	userDir := filepath.Join(homeDir, ".envreport")
	if err := os.MkdirAll(userDir, 0o750); err != nil {
		t.Fatal(err)
	}
	userContent := `
env_var: MY_ENV
logging:
  format: json
`
	if err := os.WriteFile(filepath.Join(userDir, "config.yaml"), []byte(userContent), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.EnvVar != "MY_ENV" {
		t.Errorf("EnvVar = %s, want MY_ENV (user overrides system)", cfg.EnvVar)
	}
	if !cfg.NvidiaSMI.ShowOutput {
		t.Error("ShowOutput should be kept from system config")
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("LogFormat = %s, want json", cfg.Logging.Format)
	}
}

func TestLoad_NoFiles(t *testing.T) {
	t.Setenv("ENVREPORT_CONFIG_DIR", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Load() without files = %+v, want defaults", cfg)
	}
}

func TestMergeConfig(t *testing.T) {
	dst := DefaultConfig()
	dst.NvidiaSMI.ShowOutput = true

	var src fileConfig
	src.EnvVar = "VIRTUAL_ENV"
	src.Logging.Level = "error"

	mergeConfig(&dst, &src)

	if dst.EnvVar != "VIRTUAL_ENV" {
		t.Errorf("EnvVar = %s, want VIRTUAL_ENV", dst.EnvVar)
	}
	if dst.Logging.Level != "error" {
		t.Errorf("LogLevel = %s, want error", dst.Logging.Level)
	}

	// Unset bool in the overlay must not reset the existing value
	if !dst.NvidiaSMI.ShowOutput {
		t.Error("ShowOutput was reset by an overlay that did not set it")
	}
	if dst.NvidiaSMI.Binary != "nvidia-smi" {
		t.Errorf("Binary = %s, want nvidia-smi (default)", dst.NvidiaSMI.Binary)
	}
}

func TestMergeConfig_ExplicitFalse(t *testing.T) {
	dst := DefaultConfig()
	dst.NvidiaSMI.ShowOutput = true

	off := false
	var src fileConfig
	src.NvidiaSMI.ShowOutput = &off

	mergeConfig(&dst, &src)

	if dst.NvidiaSMI.ShowOutput {
		t.Error("ShowOutput should be false after explicit overlay")
	}
}

func TestSystemConfigPath(t *testing.T) {
	path := SystemConfigPath()
	if path == "" {
		t.Error("SystemConfigPath() should not return empty string")
	}
	if filepath.Base(path) != "config.yaml" {
		t.Errorf("SystemConfigPath() basename = %s, want config.yaml", filepath.Base(path))
	}
}

func TestUserConfigPath(t *testing.T) {
	path := UserConfigPath()
	// May be empty if home dir not available
	if path != "" && filepath.Base(path) != "config.yaml" {
		t.Errorf("UserConfigPath() basename = %s, want config.yaml", filepath.Base(path))
	}
}

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{
		Path:    "logging.level",
		Message: "must not be empty",
	}

	expected := "logging.level: must not be empty"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %s, want %s", err.Error(), expected)
	}
}

func TestFormatValidationErrors_Single(t *testing.T) {
	errors := []ValidationError{
		{Path: "test.field", Message: "error message"},
	}

	result := formatValidationErrors(errors)
	expected := "test.field: error message"
	if result != expected {
		t.Errorf("formatValidationErrors() = %s, want %s", result, expected)
	}
}

func TestFormatValidationErrors_Multiple(t *testing.T) {
	errors := []ValidationError{
		{Path: "field1", Message: "error 1"},
		{Path: "field2", Message: "error 2"},
	}

	result := formatValidationErrors(errors)
	if !strings.HasPrefix(result, "2 validation errors:") {
		t.Errorf("formatValidationErrors() = %q, want count prefix", result)
	}
	if !strings.Contains(result, "  - field2: error 2") {
		t.Errorf("formatValidationErrors() = %q, missing second entry", result)
	}
}
