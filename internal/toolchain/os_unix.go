//go:build unix

package toolchain

import "golang.org/x/sys/unix"

// OSVersion reports the kernel name and release, e.g. "Linux 6.8.0".
func OSVersion() string {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return ""
	}
	return unix.ByteSliceToString(u.Sysname[:]) + " " + unix.ByteSliceToString(u.Release[:])
}
