package otp_test

import (
	"strings"
	"testing"

	"github.com/42tools/ft-otp/pkg/otp"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildURI(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		uri, err := otp.BuildURI(otp.URIParams{Secret: []byte("12345678901234567890")})
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(uri, "otpauth://totp/"))
		assert.Contains(t, uri, "algorithm=SHA1&digits=6&period=30")
		assert.Contains(t, uri, "secret=GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ")
		assert.Contains(t, uri, "issuer=ft_otp")
		assert.Contains(t, uri, "ft_otp:exemple@gmail.com")
	})

	t.Run("secret has no base32 padding", func(t *testing.T) {
		t.Parallel()
		// 19-byte secret would normally produce a padded base32 string.
		uri, err := otp.BuildURI(otp.URIParams{Secret: []byte("1234567890123456789")})
		require.NoError(t, err)

		query := strings.SplitN(uri, "?", 2)[1]
		for _, param := range strings.Split(query, "&") {
			if value, ok := strings.CutPrefix(param, "secret="); ok {
				assert.NotContains(t, value, "=", "secret value must not carry padding")
			}
		}
	})

	t.Run("custom label and issuer are escaped", func(t *testing.T) {
		t.Parallel()
		uri, err := otp.BuildURI(otp.URIParams{
			Secret:      []byte("12345678901234567890"),
			AccountName: "alice smith@example.com",
			Issuer:      "Acme Co",
		})
		require.NoError(t, err)

		assert.Contains(t, uri, "otpauth://totp/Acme%20Co:alice%20smith@example.com")
		assert.Contains(t, uri, "issuer=Acme+Co")
	})

	t.Run("empty secret rejected", func(t *testing.T) {
		t.Parallel()
		_, err := otp.BuildURI(otp.URIParams{})
		assert.ErrorIs(t, err, otp.ErrEmptySecret)
	})
}
