package config

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() Config {
	return Config{
		EnvVar: "CONDA_DEFAULT_ENV",
		NvidiaSMI: NvidiaSMIConfig{
			Binary:     "nvidia-smi",
			ShowOutput: false,
		},
		Distro: DistroConfig{
			OptionalPackage: "lsb-release",
			InstallCommand:  "apt-get install",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}
