// Package config loads the tool's settings from environment variables,
// with a .env file picked up automatically when present.
//
// Every setting has a working default; the tool runs with no environment
// at all. Setting FT_OTP_PASSPHRASE switches sealing from the fixed
// compiled-in key to a passphrase-derived one; key files sealed one way
// cannot be opened the other way.
package config
