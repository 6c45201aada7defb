// Package encoding provides the two text decoders used by the token and
// one-time-password packages.
//
// DecodeBase64URL decodes base64url text as it appears in compact token
// segments: URL-safe alphabet, padding optional. Invalid input is rejected.
//
// DecodeBase32 decodes RFC 4648 base32 text as typed by humans setting up
// an authenticator app: case-insensitive, padding optional, and characters
// outside the alphabet are skipped rather than rejected. It never fails.
package encoding
