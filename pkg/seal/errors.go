package seal

import "errors"

var (
	// ErrIntegrity covers every unseal failure: wrong key, corrupted token,
	// tampering. A single generic error avoids acting as an oracle for which
	// of them occurred.
	ErrIntegrity = errors.New("sealed secret failed verification")

	ErrSeal            = errors.New("failed to seal secret")
	ErrKeyDerivation   = errors.New("failed to derive sealing key")
	ErrEmptyPassphrase = errors.New("empty passphrase")
)
