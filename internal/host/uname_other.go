//go:build !linux

package host

// kernelBuildVersion is only consulted on Linux hosts
func kernelBuildVersion() string {
	return ""
}
