//go:build !darwin

package hostinfo

import "errors"

var errNoModel = errors.New("hardware model not available on this platform")

func readHardwareModel() (string, error) {
	return "", errNoModel
}
