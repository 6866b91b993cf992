package seal

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"io"

	"github.com/fernet/fernet-go"
	"golang.org/x/crypto/hkdf"
)

// sealPassphrase is compiled in deliberately: the derived key only
// obfuscates the artifact format. Changing it breaks every existing key
// file.
const sealPassphrase = "PFXXK4RAONSWG4TFOQQGWZLZEBUGK4TF"

// hkdfInfo separates passphrase-derived sealing keys from any other HKDF
// use of the same passphrase.
const hkdfInfo = "ft-otp-seal-v1"

// KeyDeriver produces the 256-bit Fernet key used for sealing and
// unsealing. Implementations must be deterministic: the same deriver yields
// the same key on every call, since the key is never stored.
type KeyDeriver interface {
	Key() (*fernet.Key, error)
}

// Fixed derives the key from the compiled-in passphrase: the SHA-256 digest
// of the passphrase, URL-safe base64-encoded, is the canonical Fernet key
// string. This is the transform existing key files were sealed under.
type Fixed struct{}

func (Fixed) Key() (*fernet.Key, error) {
	sum := sha256.Sum256([]byte(sealPassphrase))
	key, err := fernet.DecodeKey(base64.URLEncoding.EncodeToString(sum[:]))
	if err != nil {
		return nil, errors.Join(ErrKeyDerivation, err)
	}
	return key, nil
}

// Passphrase derives the key from a user-supplied passphrase with
// HKDF-SHA256. No salt is stored: derivation must stay a pure function of
// the passphrase so the key can be recomputed at unseal time.
type Passphrase struct {
	Passphrase string
}

func (p Passphrase) Key() (*fernet.Key, error) {
	if p.Passphrase == "" {
		return nil, errors.Join(ErrKeyDerivation, ErrEmptyPassphrase)
	}

	r := hkdf.New(sha256.New, []byte(p.Passphrase), nil, []byte(hkdfInfo))
	var key fernet.Key
	if _, err := io.ReadFull(r, key[:]); err != nil {
		return nil, errors.Join(ErrKeyDerivation, err)
	}
	return &key, nil
}
