//go:build !cuda

package gpu

import "envreport/internal/logging"

// Detector reports no compute runtime when built without NVML.
type Detector struct {
	logger *logging.Logger
}

// NewDetector creates a GPU detector that skips NVML when CUDA support is disabled.
func NewDetector(logger *logging.Logger) *Detector {
	return &Detector{logger: logger}
}

// NewDetectorWithNVML is provided for API compatibility; NVML is ignored when CUDA is disabled.
func NewDetectorWithNVML(_ NVMLInterface, logger *logging.Logger) *Detector {
	return NewDetector(logger)
}

// DetectGPUs returns a report indicating that NVML is unavailable in the current build.
func (d *Detector) DetectGPUs() GPUReport {
	d.logger.Debug("gpu.detect.disabled", "Skipping NVML detection (built without cuda tag)", nil)

	return GPUReport{
		GPUs:         []GPUInfo{},
		NVMLOk:       false,
		ErrorMessage: "NVML disabled: rebuild with -tags cuda",
	}
}
