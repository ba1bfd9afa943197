//go:build !unix || hurd

package platform

// Without x/sys/unix constants the traditional POSIX layout is used.
func hostConstants() (uint32, map[string]uint32) {
	return 0xf000, map[string]uint32{
		"S_IFIFO":  0x1000,
		"S_IFCHR":  0x2000,
		"S_IFDIR":  0x4000,
		"S_IFBLK":  0x6000,
		"S_IFREG":  0x8000,
		"S_IFLNK":  0xa000,
		"S_IFSOCK": 0xc000,
	}
}
