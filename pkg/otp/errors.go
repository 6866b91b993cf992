package otp

import "errors"

var (
	ErrEmptySecret        = errors.New("empty OTP secret")
	ErrMissingAccountName = errors.New("missing account name")
	ErrMissingIssuer      = errors.New("missing issuer")
	ErrInvalidCode        = errors.New("invalid OTP code format")
)
