package otp

import (
	"encoding/base32"
	"fmt"
	"net/url"
)

const (
	DefaultIssuer      = "ft_otp"            // Service name shown in authenticator apps
	DefaultAccountName = "exemple@gmail.com" // Placeholder account label
)

// URIParams contains the parameters for provisioning URI generation.
type URIParams struct {
	Secret      []byte // Raw secret bytes, used as-is for HMAC keying (required)
	AccountName string // User identifier like email (optional, defaults applied)
	Issuer      string // Service name (optional, defaults applied)
	Algorithm   string // HMAC algorithm (optional, defaults to SHA1)
	Digits      int    // Number of digits in generated codes (optional, defaults to 6)
	Period      int    // Code validity period in seconds (optional, defaults to 30)
}

// Validate ensures the required parameters are present.
func (p URIParams) Validate() error {
	if len(p.Secret) == 0 {
		return ErrEmptySecret
	}
	return nil
}

// withDefaults returns a copy with RFC 6238 defaults applied to zero fields.
func (p URIParams) withDefaults() URIParams {
	if p.AccountName == "" {
		p.AccountName = DefaultAccountName
	}
	if p.Issuer == "" {
		p.Issuer = DefaultIssuer
	}
	if p.Algorithm == "" {
		p.Algorithm = DefaultAlgorithm
	}
	if p.Digits == 0 {
		p.Digits = DefaultDigits
	}
	if p.Period == 0 {
		p.Period = Period
	}
	return p
}

// BuildURI creates a Key URI for authenticator apps following
// https://github.com/google/google-authenticator/wiki/Key-Uri-Format
//
// The secret is base32-encoded with padding stripped, as authenticator apps
// expect. Parameters are emitted in a fixed order (secret, issuer,
// algorithm, digits, period) rather than url.Values' sorted order, matching
// what the enrollment QR flow has always produced.
func BuildURI(p URIParams) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}

	p = p.withDefaults()

	b32 := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(p.Secret)
	label := fmt.Sprintf("%s:%s",
		url.PathEscape(p.Issuer),
		url.PathEscape(p.AccountName),
	)

	return fmt.Sprintf("otpauth://totp/%s?secret=%s&issuer=%s&algorithm=%s&digits=%d&period=%d",
		label, b32, url.QueryEscape(p.Issuer), p.Algorithm, p.Digits, p.Period), nil
}
