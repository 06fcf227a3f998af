package report

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"envreport/internal/gpu"
	"envreport/internal/host"
	"envreport/internal/logging"
)

// Version of envreport
const Version = "0.1.0"

const (
	unknownValue    = "Unknown"
	availableText   = "available"
	unavailableText = "Not available"
)

// Host answers questions about the local machine and process
type Host interface {
	Platform() string
	IsLinux() bool
	Getenv(key string) string
	GoVersion() string
}

// GPUDetector takes a snapshot of the compute runtime
type GPUDetector interface {
	DetectGPUs() gpu.GPUReport
}

// DriverProbe wraps the vendor GPU management tool
type DriverProbe interface {
	Probe() gpu.SMIProbe
	QueryTotalMemory() ([]int, error)
}

// Dependencies are the collaborators a Reporter queries
type Dependencies struct {
	Host           Host
	Distro         host.DistroSource
	DistroFallback host.DistroSource
	GPUs           GPUDetector
	SMI            DriverProbe
}

// Options are the static inputs of a report
type Options struct {
	Version         string
	EnvVar          string
	OptionalPackage string
	InstallCommand  string
}

// Reporter collects environment facts and renders them
type Reporter struct {
	deps   Dependencies
	opts   Options
	logger *logging.Logger
}

// New creates a Reporter from explicit collaborators
func New(deps Dependencies, opts Options, logger *logging.Logger) *Reporter {
	if opts.Version == "" {
		opts.Version = Version
	}
	return &Reporter{
		deps:   deps,
		opts:   opts,
		logger: logger,
	}
}

// Generate collects the report and writes it to w. Collector failures degrade
// individual facts; a write failure is logged.
func (r *Reporter) Generate(w io.Writer, showFullHelperOutput bool) {
	rep := r.Collect(showFullHelperOutput)
	if err := rep.Render(w); err != nil {
		r.logger.Warn("report.write.failed", "Failed to write report", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// Text collects and renders the report into a string
func (r *Reporter) Text(showFullHelperOutput bool) string {
	var buf bytes.Buffer
	r.Generate(&buf, showFullHelperOutput)
	return buf.String()
}

// Collect gathers all facts in display order
func (r *Reporter) Collect(showFullHelperOutput bool) Report {
	rep := Report{
		ShowFull:       showFullHelperOutput,
		InstallCommand: r.opts.InstallCommand,
	}

	rep.add("platform", r.deps.Host.Platform())

	if r.deps.Host.IsLinux() {
		r.collectDistro(&rep)
	}

	rep.add("conda env", r.envValue())
	rep.add("go version", r.deps.Host.GoVersion())
	rep.add("envreport version", r.opts.Version)

	gpus := r.deps.GPUs.DetectGPUs()
	rep.add("nvml version", gpus.RuntimeVersion())

	rep.Probe = r.deps.SMI.Probe()
	if rep.Probe.Available {
		if driver, ok := gpu.ParseDriverVersion(rep.Probe.Output); ok {
			rep.add("nvidia driver", driver)
		} else {
			r.logger.Debug("report.driver.unparsed", "nvidia-smi output has no driver version", nil)
		}
	}

	if gpus.Available() {
		rep.add("nvml cuda is", availableText)
	} else {
		rep.add("nvml cuda is", unavailableText)
	}
	rep.add("nvml cuda ver", gpus.CUDAVersionString())

	rep.GPUCount = gpus.DeviceCount
	rep.add("nvml gpus", strconv.Itoa(gpus.DeviceCount))

	// the runtime and nvidia-smi may disagree on the device list
	var totalMem []int
	if rep.Probe.Available {
		mem, err := r.deps.SMI.QueryTotalMemory()
		if err != nil {
			r.logger.Warn("report.gpu.memory.failed", "have nvidia-smi, but failed to query it", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			totalMem = mem
		}
	}

	for i := 0; i < gpus.DeviceCount; i++ {
		rep.addHeader(fmt.Sprintf("[gpu%d]", i))
		rep.addNested("name", gpus.DeviceName(i))
		if i < len(totalMem) {
			rep.addNested("total mem", fmt.Sprintf("%dMB", totalMem[i]))
		}
	}

	return rep
}

func (r *Reporter) collectDistro(rep *Report) {
	if r.deps.Distro != nil {
		if desc, ok := r.deps.Distro.Distro(); ok {
			rep.add("distro", desc)
			return
		}
	}

	r.logger.Info("report.distro.degraded", "Full distro detection unavailable, using kernel version", map[string]interface{}{
		"recommended": r.opts.OptionalPackage,
	})
	rep.recommend(r.opts.OptionalPackage)

	desc := unknownValue
	if r.deps.DistroFallback != nil {
		if fallback, ok := r.deps.DistroFallback.Distro(); ok {
			desc = fallback
		}
	}
	rep.add("distro", desc)
}

func (r *Reporter) envValue() string {
	if r.opts.EnvVar == "" {
		return unknownValue
	}
	if value := r.deps.Host.Getenv(r.opts.EnvVar); value != "" {
		return value
	}
	return unknownValue
}
