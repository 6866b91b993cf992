package qrcode_test

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/42tools/ft-otp/pkg/qrcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testURI = "otpauth://totp/ft_otp:exemple@gmail.com?secret=GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ&issuer=ft_otp&algorithm=SHA1&digits=6&period=30"

func TestGenerate(t *testing.T) {
	t.Parallel()

	t.Run("returns a decodable PNG", func(t *testing.T) {
		t.Parallel()
		data, err := qrcode.Generate(testURI, 256)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 256, img.Bounds().Dx())
		assert.Equal(t, 256, img.Bounds().Dy())
	})

	t.Run("applies default size for non-positive values", func(t *testing.T) {
		t.Parallel()
		data, err := qrcode.Generate(testURI, 0)
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(data))
		require.NoError(t, err)
		assert.Equal(t, 256, img.Bounds().Dx())
	})

	t.Run("rejects empty content", func(t *testing.T) {
		t.Parallel()
		_, err := qrcode.Generate("", 256)
		assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
	})

	t.Run("rejects whitespace-only content", func(t *testing.T) {
		t.Parallel()
		_, err := qrcode.Generate("  \t\n", 256)
		assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
	})
}

func TestTerminal(t *testing.T) {
	t.Parallel()

	t.Run("renders multi-line block art", func(t *testing.T) {
		t.Parallel()
		art, err := qrcode.Terminal(testURI)
		require.NoError(t, err)
		require.NotEmpty(t, art)
		assert.Greater(t, strings.Count(art, "\n"), 10, "expected a multi-line rendering")
	})

	t.Run("deterministic for identical content", func(t *testing.T) {
		t.Parallel()
		first, err := qrcode.Terminal(testURI)
		require.NoError(t, err)
		second, err := qrcode.Terminal(testURI)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("rejects empty content", func(t *testing.T) {
		t.Parallel()
		_, err := qrcode.Terminal("")
		assert.ErrorIs(t, err, qrcode.ErrEmptyContent)
	})
}
