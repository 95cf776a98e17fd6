package types

import (
	"bytes"

	"golang.org/x/text/encoding/charmap"
)

// DataText decodes a NUL-terminated, NUL-separated list of Latin-1 strings, the
// layout I/O Kit uses for device-tree properties such as "compatible" or
// "device_type". It returns ok = false when b does not look like text.
func DataText(b []byte) ([]string, bool) {
	if len(b) < 2 || b[len(b)-1] != 0 {
		return nil, false
	}

	parts := bytes.Split(bytes.TrimRight(b, "\x00"), []byte{0})
	out := make([]string, 0, len(parts))
	dec := charmap.ISO8859_1.NewDecoder()
	for _, p := range parts {
		if len(p) == 0 || !printable(p) {
			return nil, false
		}
		s, err := dec.Bytes(p)
		if err != nil {
			return nil, false
		}
		out = append(out, string(s))
	}
	return out, true
}

func printable(p []byte) bool {
	for _, c := range p {
		if c < 0x20 || (c >= 0x7f && c < 0xa0) {
			return false
		}
	}
	return true
}
