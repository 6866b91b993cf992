package otp

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"math"
	"regexp"
	"strings"
)

const (
	DefaultDigits    = 6      // Standard 6-digit codes
	DefaultAlgorithm = "SHA1" // HMAC-SHA1 (RFC 6238 standard)
)

var codeRegex = regexp.MustCompile(`^\d{6}$`)

// HOTP implements the RFC 4226 HMAC-based one-time password algorithm.
// The counter is serialized as 8 big-endian bytes and MACed with the secret;
// dynamic truncation then reduces the digest to a code of the requested
// number of decimal digits.
func HOTP(secret []byte, counter uint64, digits int) int {
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	mac := hmac.New(sha1.New, secret)
	mac.Write(msg[:])
	sum := mac.Sum(nil)

	// Dynamic truncation (RFC 4226 §5.3): the low nibble of the last digest
	// byte selects a 4-byte window, whose sign bit is cleared.
	offset := sum[len(sum)-1] & 0x0f
	code := int(binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff)

	return code % int(math.Pow10(digits))
}

// Code returns the zero-padded 6-digit code for the window identified by c.
// The secret bytes are used as the HMAC key exactly as passed in.
func Code(secret []byte, c Counter) (string, error) {
	if len(secret) == 0 {
		return "", ErrEmptySecret
	}
	return fmt.Sprintf("%0*d", DefaultDigits, HOTP(secret, uint64(c), DefaultDigits)), nil
}

// Verify reports whether code matches the window identified by c or either
// adjacent window, absorbing clock drift between the generating and the
// verifying device.
func Verify(secret []byte, code string, c Counter) (bool, error) {
	if len(secret) == 0 {
		return false, ErrEmptySecret
	}

	code = strings.TrimSpace(code)
	if !codeRegex.MatchString(code) {
		return false, ErrInvalidCode
	}

	for i := int64(-1); i <= 1; i++ {
		want := fmt.Sprintf("%0*d", DefaultDigits, HOTP(secret, uint64(int64(c)+i), DefaultDigits))
		if want == code {
			return true, nil
		}
	}
	return false, nil
}
