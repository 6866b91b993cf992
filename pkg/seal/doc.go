// Package seal protects the stored OTP secret at rest with Fernet
// authenticated encryption (https://github.com/fernet/spec).
//
// A Fernet token is self-contained: version byte, issue timestamp, IV,
// AES-128-CBC ciphertext, and an HMAC-SHA256 tag over all of it. Nothing
// besides the token and the key is needed to unseal, and any corruption,
// tampering, or wrong key fails verification instead of decoding garbage.
//
// Keys come from a KeyDeriver. The default Fixed deriver recomputes the
// same key on every call from a compiled-in passphrase; it obfuscates the
// artifact against casual inspection of the file format but is not secrecy
// against anyone holding the binary. The Passphrase deriver substitutes a
// user-controlled key without changing any caller, which is the upgrade
// path when real secrecy is wanted.
//
// Unseal never checks token age: sealed secrets are valid indefinitely.
package seal
