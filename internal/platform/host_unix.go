//go:build unix && !hurd

package platform

import "golang.org/x/sys/unix"

func hostConstants() (uint32, map[string]uint32) {
	constants := map[string]uint32{
		"S_IFIFO":  unix.S_IFIFO,
		"S_IFCHR":  unix.S_IFCHR,
		"S_IFDIR":  unix.S_IFDIR,
		"S_IFBLK":  unix.S_IFBLK,
		"S_IFREG":  unix.S_IFREG,
		"S_IFLNK":  unix.S_IFLNK,
		"S_IFSOCK": unix.S_IFSOCK,
	}
	for name, value := range hostExtraConstants() {
		constants[name] = value
	}
	return unix.S_IFMT, constants
}
