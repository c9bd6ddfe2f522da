package rlp

// crop returns b[from:], clamped so that offsets past the end of b yield
// an empty slice rather than a panic. Decoder paths use it wherever an
// offset derives from untrusted header arithmetic.
func crop(b []byte, from int) []byte {
	if from >= len(b) {
		return nil
	}
	return b[from:]
}
