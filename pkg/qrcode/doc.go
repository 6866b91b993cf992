// Package qrcode renders QR codes for the enrollment flow, either as raw
// PNG bytes or as a block-character string suitable for printing to a
// terminal.
//
// The package is a thin wrapper around github.com/skip2/go-qrcode that adds
// input validation, sensible defaults, and sentinel errors comparable with
// errors.Is.
//
//	art, err := qrcode.Terminal(uri)      // scan straight from the terminal
//	png, err := qrcode.Generate(uri, 256) // or save an image
package qrcode
