// Package totp generates and verifies time-based one-time passwords
// (RFC 6238) built on the RFC 4226 HOTP dynamic-truncation core.
//
// The low-level functions — Truncate, CodeAt, GenerateAt, VerifyAt — are
// pure and deterministic given a time step, which keeps them testable
// against published vectors. Generate and Verify wrap them with the wall
// clock and the default 30-second period and 6-digit code length.
//
// Verification tolerates clock drift: a window of w accepts codes from the
// w steps before and after the current one, costing 2·w+1 HMAC-SHA1
// computations in the worst case. The comparison during verification is a
// plain string equality over fixed 6-digit codes; codes generated with a
// non-default digit count never verify through this path.
//
// The Authenticator type layers enrollment on top: secret generation,
// otpauth:// provisioning URIs for authenticator apps, and context-aware
// code validation.
//
//	secret, _ := totp.GenerateSecret()
//	auth, err := totp.NewAuthenticator(totp.Config{
//	    Secret:      secret,
//	    Issuer:      "MyApp",
//	    AccountName: "user@example.com",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	uri := auth.GetProvisioningURI() // render as QR code
//	err = auth.Authenticate(ctx, "123456")
package totp
