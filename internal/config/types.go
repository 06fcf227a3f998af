package config

// Config represents the complete envreport configuration
type Config struct {
	EnvVar    string          `yaml:"env_var"`
	NvidiaSMI NvidiaSMIConfig `yaml:"nvidia_smi"`
	Distro    DistroConfig    `yaml:"distro"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// NvidiaSMIConfig controls the driver probe
type NvidiaSMIConfig struct {
	Binary     string `yaml:"binary"`
	ShowOutput bool   `yaml:"show_output"`
}

// DistroConfig controls the install hint printed when distro detection degrades
type DistroConfig struct {
	OptionalPackage string `yaml:"optional_package"`
	InstallCommand  string `yaml:"install_command"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Path    string
	Message string
}

func (e ValidationError) Error() string {
	return e.Path + ": " + e.Message
}
