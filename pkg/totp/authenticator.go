package totp

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jeremyhahn/go-authcodes/pkg/encoding"
)

// Config holds TOTP authenticator configuration.
type Config struct {
	// Secret is the base32-encoded shared secret key (required).
	Secret string
	// Issuer is the name of the issuing organization (e.g., "MyApp").
	Issuer string
	// AccountName is the account identifier (e.g., "user@example.com").
	AccountName string
	// Digits specifies the number of digits in the code (6, 7, or 8).
	// Default: 6
	Digits int
	// Period specifies the time step in seconds.
	// Default: 30
	Period int
	// Skew specifies the number of time steps to check before and after
	// the current one during validation (tolerance for clock drift).
	// Default: 1
	Skew int
}

// validate checks that the configuration is valid.
func (c Config) validate() error {
	if strings.TrimSpace(c.Secret) == "" {
		return fmt.Errorf("%w: secret must not be empty", ErrInvalidConfig)
	}

	// The permissive decoder skips unknown characters, so the only way a
	// secret is unusable is decoding to nothing at all.
	if len(encoding.DecodeBase32(c.Secret)) == 0 {
		return fmt.Errorf("%w: secret contains no base32 data", ErrInvalidConfig)
	}

	if c.Digits != 0 && (c.Digits < 6 || c.Digits > 8) {
		return fmt.Errorf("%w: digits must be 6, 7, or 8", ErrInvalidConfig)
	}

	if c.Period < 0 {
		return fmt.Errorf("%w: period must not be negative", ErrInvalidConfig)
	}

	if c.Skew < 0 {
		return fmt.Errorf("%w: skew must not be negative", ErrInvalidConfig)
	}

	return nil
}

// Authenticator generates and validates time-based one-time passwords for
// a single enrolled secret. It is safe for concurrent use.
type Authenticator struct {
	cfg    Config
	secret []byte
	now    func() time.Time
}

// NewAuthenticator creates a new TOTP authenticator.
// The configuration is validated and an error is returned if invalid.
func NewAuthenticator(cfg Config) (*Authenticator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Apply defaults
	if cfg.Digits == 0 {
		cfg.Digits = DefaultDigits
	}
	if cfg.Period == 0 {
		cfg.Period = DefaultPeriod
	}
	if cfg.Skew == 0 {
		cfg.Skew = 1
	}

	return &Authenticator{
		cfg:    cfg,
		secret: encoding.DecodeBase32(cfg.Secret),
		now:    time.Now,
	}, nil
}

// Authenticate validates a code against the current time, accepting the
// configured number of time steps of drift on either side.
func (a *Authenticator) Authenticate(ctx context.Context, code string) error {
	if a == nil {
		return ErrNilAuthenticator
	}

	if ctx == nil {
		ctx = context.Background()
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("%w: code must not be empty", ErrInvalidCode)
	}

	step := uint64(a.now().Unix()) / uint64(a.cfg.Period)
	for delta := -a.cfg.Skew; delta <= a.cfg.Skew; delta++ {
		expected, err := CodeAt(a.secret, step+uint64(delta), a.cfg.Digits)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		if expected == code {
			return nil
		}
	}

	return ErrInvalidCode
}

// Generate returns the code for the current time step.
func (a *Authenticator) Generate() (string, error) {
	if a == nil {
		return "", ErrNilAuthenticator
	}

	step := uint64(a.now().Unix()) / uint64(a.cfg.Period)
	return CodeAt(a.secret, step, a.cfg.Digits)
}

// GetProvisioningURI returns the otpauth:// URI for QR code generation.
// This URI can be encoded as a QR code and scanned by authenticator apps.
func (a *Authenticator) GetProvisioningURI() string {
	if a == nil {
		return ""
	}

	v := url.Values{}
	v.Set("secret", a.cfg.Secret)
	v.Set("issuer", a.cfg.Issuer)
	v.Set("algorithm", "SHA1")
	v.Set("digits", fmt.Sprintf("%d", a.cfg.Digits))
	v.Set("period", fmt.Sprintf("%d", a.cfg.Period))

	label := url.PathEscape(fmt.Sprintf("%s:%s", a.cfg.Issuer, a.cfg.AccountName))
	return fmt.Sprintf("otpauth://totp/%s?%s", label, v.Encode())
}

// GenerateSecret generates a cryptographically random secret key.
// The secret is returned as an unpadded base32 string suitable for the
// Config.Secret field.
func GenerateSecret() (string, error) {
	// 20 bytes (160 bits), the RFC 4226 recommended key size.
	secret := make([]byte, 20)
	if _, err := rand.Read(secret); err != nil {
		return "", fmt.Errorf("totp: failed to generate random secret: %w", err)
	}

	return base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(secret), nil
}
