package port

import "context"

//go:generate mockgen -source=notify.go -destination=mock/notify.go -package=mock

// SMSSender delivers short text messages (OTP codes).
type SMSSender interface {
	SendSMS(ctx context.Context, phoneNumber string, message string) error
}

// EmailSender delivers transactional mail (password reset links).
type EmailSender interface {
	SendEmail(to string, subject string, body string) error
}
