// Package keystore persists a single OTP secret as a sealed key file.
//
// Save validates a user-provided hexadecimal secret (at least 64 hex
// characters) and writes it, sealed, to the key file; Load reads the key
// file back and unseals it. The plaintext that round-trips through the
// store is the hexadecimal *text* of the secret, not its decoded bytes:
// the HMAC key downstream has always been the text, and decoding it here
// would silently change every generated code.
//
// The store holds exactly one secret. Saving again overwrites the previous
// key file; there is no namespace, rotation, or locking.
package keystore
