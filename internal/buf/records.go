package buf

// Slice returns b[off:off+n] when the range is in bounds.
func Slice(b []byte, off, n int) ([]byte, bool) {
	if off < 0 || n < 0 || off > len(b) || n > len(b)-off {
		return nil, false
	}
	return b[off : off+n], true
}

// Records splits b into fixed-size records. It returns ok = false when size is
// not positive or len(b) is not a multiple of size. The records alias b.
func Records(b []byte, size int) ([][]byte, bool) {
	if size <= 0 || len(b)%size != 0 {
		return nil, false
	}
	out := make([][]byte, 0, len(b)/size)
	for off := 0; off < len(b); off += size {
		rec, ok := Slice(b, off, size)
		if !ok {
			return nil, false
		}
		out = append(out, rec)
	}
	return out, true
}
