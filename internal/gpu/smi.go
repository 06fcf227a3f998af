package gpu

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"envreport/internal/command"
	"envreport/internal/logging"
)

// DefaultSMIBinary is the vendor tool probed for the driver version
const DefaultSMIBinary = "nvidia-smi"

// memoryQueryArgs asks for one total-memory value in MiB per device
var memoryQueryArgs = []string{"--query-gpu=memory.total", "--format=csv,nounits,noheader"}

// matches "Driver Version: 396.44"
var driverVersionPattern = regexp.MustCompile(`Driver Version: +(\d+\.\d+)`)

// SMI talks to nvidia-smi through a command.Runner
type SMI struct {
	runner command.Runner
	binary string
	logger *logging.Logger
}

// NewSMI creates an nvidia-smi client; an empty binary selects DefaultSMIBinary
func NewSMI(runner command.Runner, binary string, logger *logging.Logger) *SMI {
	if binary == "" {
		binary = DefaultSMIBinary
	}
	return &SMI{
		runner: runner,
		binary: binary,
		logger: logger,
	}
}

// Probe runs nvidia-smi without arguments. It is available only when the run
// succeeds, exits zero and prints something.
func (s *SMI) Probe() SMIProbe {
	result, err := s.runner.Run(s.binary)
	if err != nil {
		s.logger.Debug("gpu.smi.probe.unavailable", "nvidia-smi could not be run", map[string]interface{}{
			"binary": s.binary,
			"error":  err.Error(),
		})
		return SMIProbe{}
	}

	if !result.OK() {
		s.logger.Debug("gpu.smi.probe.failed", "nvidia-smi returned no usable output", map[string]interface{}{
			"binary":    s.binary,
			"exit_code": result.ExitCode,
		})
		return SMIProbe{}
	}

	return SMIProbe{Available: true, Output: string(result.Stdout)}
}

// QueryTotalMemory returns the total memory of every device in MiB, in device order
func (s *SMI) QueryTotalMemory() ([]int, error) {
	result, err := s.runner.Run(s.binary, memoryQueryArgs...)
	if err != nil {
		return nil, fmt.Errorf("memory query failed: %w", err)
	}
	if result.ExitCode != 0 {
		return nil, fmt.Errorf("memory query exited with code %d", result.ExitCode)
	}
	if len(result.Stdout) == 0 {
		return nil, fmt.Errorf("memory query returned no output")
	}

	return parseMemoryTotals(string(result.Stdout))
}

// ParseDriverVersion extracts the first "Driver Version: X.Y" from nvidia-smi output
func ParseDriverVersion(output string) (string, bool) {
	match := driverVersionPattern.FindStringSubmatch(output)
	if match == nil {
		return "", false
	}
	return match[1], true
}

func parseMemoryTotals(output string) ([]int, error) {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	totals := make([]int, 0, len(lines))

	for _, line := range lines {
		value, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return nil, fmt.Errorf("unexpected memory value %q: %w", line, err)
		}
		totals = append(totals, value)
	}

	return totals, nil
}
