package notify

import (
	"bytes"
	"fmt"
	"net/smtp"

	"github.com/ykumar-dev/smartdining/internal/adapter/config"
)

// SMTPSender delivers transactional mail over plain SMTP.
type SMTPSender struct {
	host string
	port string
	from string
	auth smtp.Auth
}

func NewSMTPSender(cfg *config.SMTP) *SMTPSender {
	var auth smtp.Auth
	if cfg.Password != "" {
		auth = smtp.PlainAuth("", cfg.From, cfg.Password, cfg.Host)
	}
	return &SMTPSender{
		host: cfg.Host,
		port: cfg.Port,
		from: cfg.From,
		auth: auth,
	}
}

func (s *SMTPSender) SendEmail(to string, subject string, body string) error {
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	return smtp.SendMail(addr, s.auth, s.from, []string{to}, buildMessage(s.from, to, subject, body))
}

func buildMessage(from, to, subject, body string) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: text/plain; charset=UTF-8\r\n")
	fmt.Fprintf(&buf, "\r\n%s\r\n", body)
	return buf.Bytes()
}
