package domain

import "time"

// OTPCode is a one-time phone verification code with explicit expiry.
// Expiry is checked on every read; expired rows are removed on access.
type OTPCode struct {
	PhoneNumber string
	Code        string
	ExpiresAt   time.Time
}
