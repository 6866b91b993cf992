package keystore

import "errors"

var (
	ErrKeyFileNotFound = errors.New("key file does not exist")

	// ErrInvalidKey wraps the specific validation failures below.
	ErrInvalidKey  = errors.New("invalid hexadecimal key")
	ErrKeyTooShort = errors.New("key must be at least 64 hexadecimal characters")
	ErrKeyNotHex   = errors.New("key is not valid hexadecimal")

	ErrDecryptFailed = errors.New("unable to decrypt the key file")
	ErrStoreArtifact = errors.New("failed to write key file")
)
