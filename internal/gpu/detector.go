//go:build cuda

package gpu

import (
	"fmt"

	"envreport/internal/logging"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
)

// Detector queries the compute runtime through NVML
type Detector struct {
	nvml   NVMLInterface
	logger *logging.Logger
}

// NewDetector creates a new GPU detector
func NewDetector(logger *logging.Logger) *Detector {
	return &Detector{
		nvml:   NewRealNVML(),
		logger: logger,
	}
}

// NewDetectorWithNVML creates a detector with a custom NVML interface (for testing)
func NewDetectorWithNVML(nvmlInterface NVMLInterface, logger *logging.Logger) *Detector {
	return &Detector{
		nvml:   nvmlInterface,
		logger: logger,
	}
}

// DetectGPUs initializes NVML, takes a snapshot of the runtime and shuts NVML
// down again. Failures degrade the report instead of returning errors.
func (d *Detector) DetectGPUs() GPUReport {
	d.logger.Debug("gpu.detect.start", "Starting GPU detection", nil)

	report := GPUReport{
		GPUs: make([]GPUInfo, 0),
	}

	ret := d.nvml.Init()
	if ret != nvml.SUCCESS {
		report.ErrorMessage = fmt.Sprintf("Failed to initialize NVML: %v", nvml.ErrorString(ret))
		d.logger.Info("gpu.nvml.init.failed", "NVML initialization failed", map[string]interface{}{
			"error": report.ErrorMessage,
		})
		return report
	}
	defer func() {
		if ret := d.nvml.Shutdown(); ret != nvml.SUCCESS {
			d.logger.Warn("gpu.nvml.shutdown.failed", "NVML shutdown reported an error", map[string]interface{}{
				"error": nvml.ErrorString(ret),
			})
		}
	}()

	report.NVMLOk = true

	if version, ret := d.nvml.SystemGetNVMLVersion(); ret == nvml.SUCCESS {
		report.NVMLVersion = version
	} else {
		d.logger.Warn("gpu.nvml.version.failed", "Failed to get NVML version", map[string]interface{}{
			"error": nvml.ErrorString(ret),
		})
	}

	if driverVersion, ret := d.nvml.SystemGetDriverVersion(); ret == nvml.SUCCESS {
		report.DriverVersion = driverVersion
	} else {
		d.logger.Warn("gpu.driver.version.failed", "Failed to get driver version", map[string]interface{}{
			"error": nvml.ErrorString(ret),
		})
	}

	if cudaVersion, ret := d.nvml.SystemGetCudaDriverVersion(); ret == nvml.SUCCESS {
		report.CUDAVersion = cudaVersion
	} else {
		d.logger.Warn("gpu.cuda.version.failed", "Failed to get CUDA version", map[string]interface{}{
			"error": nvml.ErrorString(ret),
		})
	}

	count, ret := d.nvml.DeviceGetCount()
	if ret != nvml.SUCCESS {
		report.ErrorMessage = fmt.Sprintf("Failed to get device count: %v", nvml.ErrorString(ret))
		d.logger.Warn("gpu.device.count.failed", "Failed to get GPU count", map[string]interface{}{
			"error": report.ErrorMessage,
		})
		return report
	}
	report.DeviceCount = count

	d.logger.Debug("gpu.device.count", "Found GPU devices", map[string]interface{}{
		"count": count,
	})

	for i := 0; i < count; i++ {
		device, ret := d.nvml.DeviceGetHandleByIndex(i)
		if ret != nvml.SUCCESS {
			d.logger.Warn("gpu.device.handle.failed", "Failed to get device handle", map[string]interface{}{
				"index": i,
				"error": nvml.ErrorString(ret),
			})
			continue
		}

		gpuInfo := GPUInfo{
			Index: i,
		}

		if name, ret := device.GetName(); ret == nvml.SUCCESS {
			gpuInfo.Name = name
		}

		if uuid, ret := device.GetUUID(); ret == nvml.SUCCESS {
			gpuInfo.UUID = uuid
		}

		if memInfo, ret := device.GetMemoryInfo(); ret == nvml.SUCCESS {
			gpuInfo.MemoryMB = memInfo.Total / (1024 * 1024)
		}

		report.GPUs = append(report.GPUs, gpuInfo)

		d.logger.Debug("gpu.device.detected", "GPU device detected", map[string]interface{}{
			"index":     i,
			"name":      gpuInfo.Name,
			"memory_mb": gpuInfo.MemoryMB,
		})
	}

	return report
}
