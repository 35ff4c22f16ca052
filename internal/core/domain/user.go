package domain

import "time"

// User is a provisioned account. Registration is closed: a user row
// is created out of band and signup only sets the password.
type User struct {
	ID           uint64
	Email        string
	PasswordHash string
}

// PasswordResetToken is a single-use reset grant with explicit expiry,
// checked on every read.
type PasswordResetToken struct {
	Email     string
	Token     string
	ExpiresAt time.Time
}
