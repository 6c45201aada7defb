package jwt

import (
	"crypto/hmac"
	"crypto/sha256"
	"strings"

	"github.com/jeremyhahn/go-authcodes/pkg/encoding"
)

// Result is the outcome of a raw signature verification.
type Result struct {
	// Valid reports whether the signature matched.
	Valid bool

	// Payload holds the decoded payload segment. It is populated only
	// when the signature verified, so callers that ignore Valid never see
	// unauthenticated payload bytes.
	Payload []byte
}

// Verify checks the HMAC-SHA256 signature of the compact token against
// secret and, on success, returns the decoded payload.
//
// The token is split on its first two dots; any dots beyond the second
// belong to the signature segment. The signing input is the raw encoded
// header and payload text joined by a dot, exactly the bytes that were
// signed — it is never re-decoded. The header's declared algorithm is not
// parsed: HS256 is the only scheme ever applied.
//
// A token with fewer than two dots returns ErrMalformedToken. Every later
// failure — an undecodable signature segment or a digest mismatch — is
// reported as Valid=false with a nil error.
func Verify(token, secret string) (*Result, error) {
	dot1 := strings.IndexByte(token, '.')
	if dot1 < 0 {
		return nil, ErrMalformedToken
	}
	rest := strings.IndexByte(token[dot1+1:], '.')
	if rest < 0 {
		return nil, ErrMalformedToken
	}
	dot2 := dot1 + 1 + rest

	signingInput := token[:dot2]
	payloadSegment := token[dot1+1 : dot2]
	signatureSegment := token[dot2+1:]

	signature, err := encoding.DecodeBase64URL(signatureSegment)
	if err != nil {
		return &Result{}, nil
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(signingInput))
	expected := mac.Sum(nil)

	// Length is checked before the comparator so the comparator itself
	// always runs over equal-length buffers.
	if len(expected) != len(signature) || !ConstantTimeEqual(expected, signature) {
		return &Result{}, nil
	}

	payload, err := encoding.DecodeBase64URL(payloadSegment)
	if err != nil {
		// Signature verified but the payload segment is not decodable;
		// report validity without a payload.
		return &Result{Valid: true}, nil
	}
	return &Result{Valid: true, Payload: payload}, nil
}
