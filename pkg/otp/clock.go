package otp

import "time"

// Period is the code validity window in seconds (RFC 6238 standard).
const Period = 30

// Counter is the TOTP moving factor: the number of whole 30-second windows
// elapsed since the Unix epoch.
type Counter uint64

// Now returns the counter for the current system time.
func Now() Counter {
	return At(time.Now())
}

// At returns the counter for the window containing t. Two times within the
// same 30-second window map to the same counter.
func At(t time.Time) Counter {
	return Counter(t.Unix() / Period)
}
