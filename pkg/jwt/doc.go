// Package jwt verifies and issues HS256-signed compact tokens.
//
// The package has two layers. Verify is the raw layer: it checks only the
// HMAC-SHA256 signature over the encoded header and payload and returns the
// decoded payload when, and only when, the signature matches. It performs no
// claim validation of any kind — expiry, issuer and audience are the
// caller's concern.
//
// CreateToken and VerifyToken form the claims layer on top of
// github.com/golang-jwt/jwt/v5: short-lived access and refresh tokens
// carrying sub, iat, exp and kind claims, with expiry enforced during
// verification.
//
// # Algorithm confinement
//
// Both layers apply HS256 semantics exclusively. The raw verifier never
// parses the header, so whatever algorithm the header declares has no
// effect on how the signature is checked; the claims layer rejects any
// token whose header declares a different algorithm. This closes the
// classic algorithm-confusion hole where an attacker downgrades a token
// to "none" or swaps an asymmetric scheme for a symmetric one.
//
// # Verification example
//
//	result, err := jwt.Verify(token, secret)
//	if err != nil {
//	    // token did not have the three dot-separated segments
//	}
//	if result.Valid {
//	    fmt.Printf("payload: %s\n", result.Payload)
//	}
package jwt
