package report

import (
	"os"

	"envreport/internal/command"
	"envreport/internal/config"
	"envreport/internal/gpu"
	"envreport/internal/host"
	"envreport/internal/logging"
)

// NewFromConfig wires a Reporter to the live host, NVML and nvidia-smi
func NewFromConfig(cfg config.Config, logger *logging.Logger) *Reporter {
	deps := Dependencies{
		Host:           host.NewSystem(),
		Distro:         host.NewOSReleaseSource(),
		DistroFallback: host.NewUnameSource(),
		GPUs:           gpu.NewDetector(logger),
		SMI:            gpu.NewSMI(command.NewExecRunner(), cfg.NvidiaSMI.Binary, logger),
	}

	return New(deps, Options{
		Version:         Version,
		EnvVar:          cfg.EnvVar,
		OptionalPackage: cfg.Distro.OptionalPackage,
		InstallCommand:  cfg.Distro.InstallCommand,
	}, logger)
}

// ShowInstall prints the environment report to stdout using the default
// configuration. Diagnostics about failed probes go to stderr.
func ShowInstall(showNvidiaSMI bool) {
	logger := logging.NewLoggerWithWriter(logging.LevelWarn, logging.FormatText, os.Stderr)
	NewFromConfig(config.DefaultConfig(), logger).Generate(os.Stdout, showNvidiaSMI)
}
