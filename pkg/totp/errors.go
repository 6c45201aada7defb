package totp

import "errors"

var (
	// ErrInvalidCode indicates the provided code did not match any step
	// in the accepted window.
	ErrInvalidCode = errors.New("totp: invalid code")

	// ErrInvalidConfig indicates the configuration is invalid.
	ErrInvalidConfig = errors.New("totp: invalid configuration")

	// ErrInvalidDigits indicates a requested code length outside 1..9.
	ErrInvalidDigits = errors.New("totp: digits out of range")

	// ErrEmptySecret indicates the base32 secret decoded to zero bytes.
	ErrEmptySecret = errors.New("totp: secret decodes to zero bytes")

	// ErrNilAuthenticator indicates a nil authenticator was used.
	ErrNilAuthenticator = errors.New("totp: authenticator is nil")
)
