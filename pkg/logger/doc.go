// Package logger builds configured log/slog loggers for the CLI.
//
// The tool logs to stderr so tokens, URIs, and QR art on stdout stay
// scriptable. Text format and warn level are the defaults; --verbose drops
// the level to debug.
package logger
