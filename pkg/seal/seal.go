package seal

import (
	"errors"
	"time"

	"github.com/fernet/fernet-go"
)

// noExpiry disables the token age check: sealed secrets never expire.
const noExpiry time.Duration = -1

// Seal encrypts and authenticates plaintext under the deriver's key and
// returns a self-contained Fernet token. No separate IV or tag needs to be
// stored alongside it.
func Seal(plaintext []byte, deriver KeyDeriver) ([]byte, error) {
	key, err := deriver.Key()
	if err != nil {
		return nil, err
	}

	token, err := fernet.EncryptAndSign(plaintext, key)
	if err != nil {
		return nil, errors.Join(ErrSeal, err)
	}
	return token, nil
}

// Unseal verifies and decrypts a token produced by Seal, returning the
// original plaintext. Every verification failure is reported as
// ErrIntegrity regardless of cause.
func Unseal(token []byte, deriver KeyDeriver) ([]byte, error) {
	key, err := deriver.Key()
	if err != nil {
		return nil, err
	}

	plaintext := fernet.VerifyAndDecrypt(token, noExpiry, []*fernet.Key{key})
	if plaintext == nil {
		return nil, ErrIntegrity
	}
	return plaintext, nil
}
