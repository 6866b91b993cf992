package keystore

import (
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/42tools/ft-otp/pkg/seal"
)

const (
	// DefaultKeyFile is the sealed artifact written to the working directory.
	DefaultKeyFile = "ft_otp.key"

	// MinHexLength guarantees at least 256 bits of entropy in the secret.
	MinHexLength = 64
)

// Store seals a secret into a key file and loads it back.
type Store struct {
	keyFile string
	deriver seal.KeyDeriver
}

// New returns a store writing to keyFile using the given key deriver.
// Zero values fall back to DefaultKeyFile and the fixed deriver.
func New(keyFile string, deriver seal.KeyDeriver) *Store {
	if keyFile == "" {
		keyFile = DefaultKeyFile
	}
	if deriver == nil {
		deriver = seal.Fixed{}
	}
	return &Store{keyFile: keyFile, deriver: deriver}
}

// KeyFile returns the path of the sealed artifact.
func (s *Store) KeyFile() string {
	return s.keyFile
}

// ValidateHexKey checks that a trimmed secret is long enough and parses as
// hexadecimal. Length is checked before parsing so a short-but-garbled
// input reports the more actionable error.
func ValidateHexKey(secret string) error {
	if len(secret) < MinHexLength {
		return errors.Join(ErrInvalidKey, ErrKeyTooShort)
	}
	if _, err := hex.DecodeString(secret); err != nil {
		return errors.Join(ErrInvalidKey, ErrKeyNotHex, err)
	}
	return nil
}

// Save reads the hexadecimal secret at hexPath, validates it, and writes
// the sealed key file, overwriting any previous one. The sealed plaintext
// is the trimmed hex text itself.
func (s *Store) Save(hexPath string) error {
	raw, err := os.ReadFile(hexPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errors.Join(ErrKeyFileNotFound, err)
		}
		return errors.Join(ErrStoreArtifact, err)
	}

	secret := strings.TrimSpace(string(raw))
	if err := ValidateHexKey(secret); err != nil {
		return err
	}

	token, err := seal.Seal([]byte(secret), s.deriver)
	if err != nil {
		return err
	}

	if err := os.WriteFile(s.keyFile, token, 0o600); err != nil {
		return errors.Join(ErrStoreArtifact, err)
	}
	return nil
}

// Load reads the sealed key file and returns the secret exactly as it was
// sealed, ready for HMAC keying. A failed unseal is reported as
// ErrDecryptFailed; the caller decides whether that is fatal.
func (s *Store) Load() ([]byte, error) {
	token, err := os.ReadFile(s.keyFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Join(ErrKeyFileNotFound, err)
		}
		return nil, err
	}

	secret, err := seal.Unseal(token, s.deriver)
	if err != nil {
		return nil, errors.Join(ErrDecryptFailed, err)
	}
	return secret, nil
}
