package totp

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/jeremyhahn/go-authcodes/pkg/encoding"
)

const (
	// DefaultPeriod is the RFC 6238 time-step size in seconds.
	DefaultPeriod = 30

	// DefaultDigits is the standard code length.
	DefaultDigits = 6
)

// Truncate applies RFC 4226 dynamic truncation to an HMAC digest of at
// least 20 bytes. The low nibble of digest[19] selects a byte offset, and
// the four bytes there form a big-endian value with the top bit masked to
// zero to avoid sign ambiguity. The extraction position is data-dependent
// on the digest itself and is not configurable.
func Truncate(digest []byte) uint32 {
	offset := digest[19] & 0x0f
	return uint32(digest[offset]&0x7f)<<24 |
		uint32(digest[offset+1])<<16 |
		uint32(digest[offset+2])<<8 |
		uint32(digest[offset+3])
}

// TimeStep returns the HOTP counter for t: the number of whole 30-second
// intervals elapsed since the Unix epoch.
func TimeStep(t time.Time) uint64 {
	return uint64(t.Unix()) / DefaultPeriod
}

// CodeAt computes the HOTP code for secret at the given counter value.
// The counter is hashed as 8 big-endian bytes with HMAC-SHA1, truncated,
// and reduced modulo 10^digits into a zero-padded decimal string of
// exactly digits characters. digits must be within 1..9 so the modulus
// stays inside the 31-bit truncated value's range.
func CodeAt(secret []byte, counter uint64, digits int) (string, error) {
	if digits < 1 || digits > 9 {
		return "", fmt.Errorf("%w: %d", ErrInvalidDigits, digits)
	}

	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	mac := hmac.New(sha1.New, secret)
	mac.Write(msg[:])

	code := Truncate(mac.Sum(nil)) % pow10(digits)
	return fmt.Sprintf("%0*d", digits, code), nil
}

// Generate returns the current 6-digit code for a base32-encoded secret.
func Generate(secretB32 string) (string, error) {
	return GenerateAt(secretB32, time.Now())
}

// GenerateAt returns the 6-digit code for the time step containing t.
// Returns ErrEmptySecret when the secret decodes to no bytes.
func GenerateAt(secretB32 string, t time.Time) (string, error) {
	secret := encoding.DecodeBase32(secretB32)
	if len(secret) == 0 {
		return "", ErrEmptySecret
	}
	return CodeAt(secret, TimeStep(t), DefaultDigits)
}

// Verify reports whether code matches the secret at the current time,
// accepting up to window time steps of drift on either side.
func Verify(secretB32, code string, window int) bool {
	return VerifyAt(secretB32, code, window, time.Now())
}

// VerifyAt checks code against every step from -window to +window around
// the step containing t, returning true on the first match. The comparison
// is a plain equality over fixed 6-digit decimal strings, so codes
// generated with a different digit count never match. The candidate step
// is computed in unsigned arithmetic, so a negative delta at a step near
// zero wraps around rather than clamping.
func VerifyAt(secretB32, code string, window int, t time.Time) bool {
	secret := encoding.DecodeBase32(secretB32)
	if len(secret) == 0 {
		return false
	}

	step := TimeStep(t)
	for delta := -window; delta <= window; delta++ {
		expected, err := CodeAt(secret, step+uint64(delta), DefaultDigits)
		if err != nil {
			continue
		}
		if expected == code {
			return true
		}
	}
	return false
}

func pow10(n int) uint32 {
	v := uint32(1)
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}
