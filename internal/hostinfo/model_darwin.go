//go:build darwin

package hostinfo

import "golang.org/x/sys/unix"

// readHardwareModel returns the hw.model sysctl, e.g. "MacBookAir10,1".
func readHardwareModel() (string, error) {
	return unix.Sysctl("hw.model")
}
