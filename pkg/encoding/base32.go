package encoding

import "strings"

// RFC 4648 base32 alphabet; a symbol's value is its index.
const base32Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

// DecodeBase32 decodes an RFC 4648 base32 string permissively. The decode
// is a single pass over the input: characters are case-folded to upper,
// the first padding ('=') or space character stops the decode entirely,
// and any other character outside the alphabet is skipped. A byte is
// emitted whenever eight bits have accumulated; trailing partial bits are
// discarded. DecodeBase32 never fails — a string without any alphabet
// characters simply decodes to zero bytes.
func DecodeBase32(s string) []byte {
	decoded := make([]byte, 0, len(s)*5/8)
	var buffer uint32
	bits := 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == '=' || ch == ' ' {
			break
		}
		if 'a' <= ch && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		v := strings.IndexByte(base32Alphabet, ch)
		if v < 0 {
			continue
		}
		buffer = buffer<<5 | uint32(v)
		bits += 5
		if bits >= 8 {
			decoded = append(decoded, byte(buffer>>(bits-8)))
			bits -= 8
		}
	}
	return decoded
}
