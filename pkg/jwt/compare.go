package jwt

// ConstantTimeEqual reports whether a and b hold the same bytes. The XOR of
// every byte pair is folded into a single accumulator across the entire
// buffer, so the running time does not depend on where the first mismatch
// occurs. Buffers of different length compare unequal immediately; that
// length check is not constant time, which is acceptable because digest
// lengths are public.
func ConstantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}
