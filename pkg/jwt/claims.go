package jwt

import (
	"errors"
	"fmt"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
)

// Token kinds carried in the kind claim.
const (
	KindAccess  = "access"
	KindRefresh = "refresh"
)

// Claims are the validated claims of a token issued by CreateToken.
type Claims struct {
	// Subject is the user identifier from the sub claim.
	Subject string

	// Kind is "access" or "refresh".
	Kind string

	// IssuedAt is when the token was created.
	IssuedAt time.Time

	// ExpiresAt is when the token stops validating.
	ExpiresAt time.Time
}

// CreateToken issues an HS256-signed token for userID with the given
// lifetime. kind distinguishes access tokens from refresh tokens and is
// carried as a custom claim.
func CreateToken(userID, secret string, ttl time.Duration, kind string) (string, error) {
	now := time.Now()
	claims := jwtv5.MapClaims{
		"sub":  userID,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
		"kind": kind,
	}

	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("jwt: failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken parses and validates a token issued by CreateToken. Only
// HS256 signatures are accepted regardless of what the header declares,
// and the exp claim is enforced.
func VerifyToken(token, secret string) (*Claims, error) {
	parsed, err := jwtv5.Parse(token,
		func(t *jwtv5.Token) (interface{}, error) {
			return []byte(secret), nil
		},
		jwtv5.WithValidMethods([]string{jwtv5.SigningMethodHS256.Alg()}),
		jwtv5.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", ErrExpiredToken, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	mapClaims, ok := parsed.Claims.(jwtv5.MapClaims)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected claims type", ErrInvalidClaims)
	}

	claims := &Claims{}
	if sub, ok := mapClaims["sub"].(string); ok {
		claims.Subject = sub
	}
	if kind, ok := mapClaims["kind"].(string); ok {
		claims.Kind = kind
	}
	if iat, ok := mapClaims["iat"].(float64); ok {
		claims.IssuedAt = time.Unix(int64(iat), 0)
	}
	if exp, ok := mapClaims["exp"].(float64); ok {
		claims.ExpiresAt = time.Unix(int64(exp), 0)
	}
	return claims, nil
}
