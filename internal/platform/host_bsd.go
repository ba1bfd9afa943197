//go:build darwin || freebsd

package platform

import "golang.org/x/sys/unix"

// BSD whiteouts.
func hostExtraConstants() map[string]uint32 {
	return map[string]uint32{
		"S_IFWHT": unix.S_IFWHT,
	}
}
