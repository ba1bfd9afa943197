//go:build unix && !hurd && !darwin && !freebsd && !solaris

package platform

func hostExtraConstants() map[string]uint32 {
	return nil
}
