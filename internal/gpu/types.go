package gpu

// NoneMarker is printed for versions the compute runtime cannot report
const NoneMarker = "None"

// GPUInfo represents information about a single GPU
type GPUInfo struct {
	Name     string `json:"name"`
	UUID     string `json:"uuid"`
	MemoryMB uint64 `json:"memory_mb"`
	Index    int    `json:"index"`
}

// GPUReport is what the compute runtime sees. A device whose handle cannot be
// opened still counts in DeviceCount but has no entry in GPUs.
type GPUReport struct {
	NVMLVersion   string    `json:"nvml_version"`
	DriverVersion string    `json:"driver_version"`
	CUDAVersion   int       `json:"cuda_version"`
	NVMLOk        bool      `json:"nvml_ok"`
	DeviceCount   int       `json:"device_count"`
	GPUs          []GPUInfo `json:"gpus"`
	ErrorMessage  string    `json:"error_message,omitempty"`
}

// Available reports whether GPU compute can be used at all
func (r GPUReport) Available() bool {
	return r.NVMLOk && r.DeviceCount > 0
}

// RuntimeVersion returns the NVML library version or NoneMarker
func (r GPUReport) RuntimeVersion() string {
	if r.NVMLVersion == "" {
		return NoneMarker
	}
	return r.NVMLVersion
}

// CUDAVersionString formats the CUDA driver version as major.minor
func (r GPUReport) CUDAVersionString() string {
	return formatCUDAVersion(r.CUDAVersion)
}

// DeviceName returns the name of the device at index, or "Unknown"
func (r GPUReport) DeviceName(index int) string {
	for _, info := range r.GPUs {
		if info.Index == index && info.Name != "" {
			return info.Name
		}
	}
	return "Unknown"
}

// SMIProbe is the outcome of running nvidia-smi without arguments
type SMIProbe struct {
	Available bool
	Output    string
}
