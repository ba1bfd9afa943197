//go:build solaris

package platform

import "golang.org/x/sys/unix"

// Doors and event ports.
func hostExtraConstants() map[string]uint32 {
	return map[string]uint32{
		"S_IFDOOR": unix.S_IFDOOR,
		"S_IFPORT": unix.S_IFPORT,
	}
}
