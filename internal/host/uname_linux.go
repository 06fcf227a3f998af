//go:build linux

package host

import "golang.org/x/sys/unix"

// kernelBuildVersion returns the version field of uname(2)
func kernelBuildVersion() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return ""
	}
	return unix.ByteSliceToString(uts.Version[:])
}
