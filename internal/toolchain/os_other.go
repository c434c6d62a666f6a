//go:build !unix

package toolchain

import "runtime"

func OSVersion() string {
	return runtime.GOOS
}
