package host

import (
	"strings"

	"github.com/shirou/gopsutil/v3/host"
)

// DistroSource describes the Linux distribution. ok is false when the source
// has nothing to offer on this host.
type DistroSource interface {
	Distro() (description string, ok bool)
}

// OSReleaseSource is the full source: distribution name and version as found in
// os-release, lsb-release or the lsb_release tool.
type OSReleaseSource struct {
	platformInfo func() (platform, family, version string, err error)
}

// NewOSReleaseSource creates the full distro source
func NewOSReleaseSource() *OSReleaseSource {
	return &OSReleaseSource{platformInfo: host.PlatformInformation}
}

// Distro returns "<platform> <version>", e.g. "ubuntu 22.04"
func (s *OSReleaseSource) Distro() (string, bool) {
	platform, _, version, err := s.platformInfo()
	if err != nil || strings.TrimSpace(platform) == "" {
		return "", false
	}
	return strings.TrimSpace(strings.TrimSpace(platform) + " " + strings.TrimSpace(version)), true
}

// UnameSource is the degraded source: only the kernel build string, which on
// most distributions embeds the distro name (e.g. "#44-Ubuntu SMP ...").
type UnameSource struct {
	kernelVersion func() string
}

// NewUnameSource creates the degraded distro source
func NewUnameSource() *UnameSource {
	return &UnameSource{kernelVersion: kernelBuildVersion}
}

// Distro returns the uname version field
func (s *UnameSource) Distro() (string, bool) {
	version := strings.TrimSpace(s.kernelVersion())
	return version, version != ""
}
