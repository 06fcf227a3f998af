package gpu

import "fmt"

// formatCUDAVersion turns NVML's 1000*major + 10*minor encoding into "major.minor"
func formatCUDAVersion(version int) string {
	if version <= 0 {
		return NoneMarker
	}
	return fmt.Sprintf("%d.%d", version/1000, (version%1000)/10)
}
