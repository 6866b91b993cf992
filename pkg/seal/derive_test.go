package seal_test

import (
	"testing"

	"github.com/42tools/ft-otp/pkg/seal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedDeriver(t *testing.T) {
	t.Parallel()

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()
		first, err := seal.Fixed{}.Key()
		require.NoError(t, err)
		second, err := seal.Fixed{}.Key()
		require.NoError(t, err)
		assert.Equal(t, first.Encode(), second.Encode())
	})

	t.Run("matches the historical key transform", func(t *testing.T) {
		t.Parallel()
		// base64url(SHA-256(passphrase)); pinned so a refactor cannot
		// silently orphan existing key files.
		key, err := seal.Fixed{}.Key()
		require.NoError(t, err)
		assert.Equal(t, "WDLkoWMtzm3-AnBPrz78S0rlD6HKmtchMnpbgGon7dU=", key.Encode())
	})
}

func TestPassphraseDeriver(t *testing.T) {
	t.Parallel()

	t.Run("deterministic per passphrase", func(t *testing.T) {
		t.Parallel()
		first, err := seal.Passphrase{Passphrase: "correct horse"}.Key()
		require.NoError(t, err)
		second, err := seal.Passphrase{Passphrase: "correct horse"}.Key()
		require.NoError(t, err)
		assert.Equal(t, first.Encode(), second.Encode())
	})

	t.Run("distinct passphrases yield distinct keys", func(t *testing.T) {
		t.Parallel()
		first, err := seal.Passphrase{Passphrase: "correct horse"}.Key()
		require.NoError(t, err)
		second, err := seal.Passphrase{Passphrase: "battery staple"}.Key()
		require.NoError(t, err)
		assert.NotEqual(t, first.Encode(), second.Encode())
	})

	t.Run("differs from the fixed key", func(t *testing.T) {
		t.Parallel()
		fixed, err := seal.Fixed{}.Key()
		require.NoError(t, err)
		derived, err := seal.Passphrase{Passphrase: "correct horse"}.Key()
		require.NoError(t, err)
		assert.NotEqual(t, fixed.Encode(), derived.Encode())
	})

	t.Run("empty passphrase rejected", func(t *testing.T) {
		t.Parallel()
		_, err := seal.Passphrase{}.Key()
		require.Error(t, err)
		assert.ErrorIs(t, err, seal.ErrKeyDerivation)
		assert.ErrorIs(t, err, seal.ErrEmptyPassphrase)
	})
}
