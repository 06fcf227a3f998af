// Package host answers read-only questions about the machine the report runs on.
package host

import (
	"os"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
)

// System is the live implementation backed by gopsutil and the Go runtime
type System struct {
	info func() (*host.InfoStat, error)
}

// NewSystem creates a System querying the current host
func NewSystem() *System {
	return &System{info: host.Info}
}

// Platform identifies the OS, kernel release and architecture, e.g.
// "Linux-6.8.0-45-generic-x86_64". gopsutil returns partial data together with
// an error on some hosts, so whatever was filled in is used.
func (s *System) Platform() string {
	info, _ := s.info()
	if info == nil {
		return formatPlatform(runtime.GOOS, "", runtime.GOARCH)
	}

	osName := info.OS
	if osName == "" {
		osName = runtime.GOOS
	}
	arch := info.KernelArch
	if arch == "" {
		arch = runtime.GOARCH
	}
	return formatPlatform(osName, info.KernelVersion, arch)
}

// IsLinux reports whether the host runs a Linux kernel
func (s *System) IsLinux() bool {
	return runtime.GOOS == "linux"
}

// Getenv reads an environment variable
func (s *System) Getenv(key string) string {
	return os.Getenv(key)
}

// GoVersion returns the version of the Go runtime the binary was built with
func (s *System) GoVersion() string {
	return runtime.Version()
}

func formatPlatform(osName, kernel, arch string) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{capitalize(osName), kernel, arch} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, "-")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
