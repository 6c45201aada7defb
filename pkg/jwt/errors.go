package jwt

import "errors"

var (
	// ErrMalformedToken indicates the token does not have three
	// dot-separated segments.
	ErrMalformedToken = errors.New("jwt: malformed token")

	// ErrInvalidToken indicates the token signature or structure failed
	// claims-layer validation.
	ErrInvalidToken = errors.New("jwt: invalid token")

	// ErrExpiredToken indicates the token's exp claim is in the past.
	ErrExpiredToken = errors.New("jwt: token expired")

	// ErrInvalidClaims indicates the token claims are missing or of an
	// unexpected type.
	ErrInvalidClaims = errors.New("jwt: invalid claims")
)
