// Package otp implements the HOTP (RFC 4226) and TOTP (RFC 6238) one-time
// password algorithms and the otpauth:// provisioning URI used to enroll a
// secret into authenticator applications.
//
// The package works on raw secret bytes: whatever byte sequence the caller
// supplies is used as the HMAC-SHA1 key without any decoding or
// normalization. This matters for compatibility: the keystore stores the
// hexadecimal text of the user's secret and keys the HMAC with that text,
// so a secret enrolled here produces the same codes as existing
// deployments of the key file format.
//
// # Usage
//
//	secret, err := store.Load()
//	if err != nil {
//		// handle error
//	}
//	code, err := otp.Code(secret, otp.Now())
//	uri, err := otp.BuildURI(otp.URIParams{Secret: secret})
//
// Codes are always 6 decimal digits, zero-padded, derived from the
// 30-second window containing the given counter. Verify accepts codes from
// the adjacent windows as well to absorb clock drift between devices.
//
// # Error Handling
//
// Exported functions return package-level sentinel errors (ErrEmptySecret,
// ErrMissingIssuer, ...) suitable for errors.Is checks.
package otp
