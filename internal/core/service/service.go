package service

import (
	"time"

	"go.uber.org/zap"

	"github.com/ykumar-dev/smartdining/internal/core/port"
)

// Config carries the business-level settings the service needs:
// where the gateway sends users back, where the frontend lives, who
// is privileged, and how long short-lived secrets stay valid.
type Config struct {
	// ReturnURLBase is the public base of the payment-redirect
	// endpoint; the order id is appended per session.
	ReturnURLBase string
	// NotifyURL is the public webhook endpoint handed to the gateway.
	NotifyURL string
	// FeedbackURL is the frontend feedback page, the success
	// destination after a paid checkout.
	FeedbackURL string
	// OrderingURL is the frontend ordering page, the default
	// destination for everything else.
	OrderingURL string
	// ResetURL is the frontend password-reset page.
	ResetURL string
	// Admins is the externally configured set of privileged
	// identities, resolved at startup.
	Admins []string

	OTPTTL   time.Duration
	ResetTTL time.Duration
}

type Service struct {
	repo    port.Repository
	token   port.TokenService
	gateway port.GatewayClient
	sms     port.SMSSender
	email   port.EmailSender
	admins  map[string]struct{}
	cfg     Config
	logger  *zap.Logger
}

func NewService(repo port.Repository, token port.TokenService, gateway port.GatewayClient,
	sms port.SMSSender, email port.EmailSender, cfg Config, logger *zap.Logger) (*Service, error) {
	if cfg.OTPTTL == 0 {
		cfg.OTPTTL = 5 * time.Minute
	}
	if cfg.ResetTTL == 0 {
		cfg.ResetTTL = 15 * time.Minute
	}
	admins := make(map[string]struct{}, len(cfg.Admins))
	for _, a := range cfg.Admins {
		admins[a] = struct{}{}
	}
	return &Service{
		repo:    repo,
		token:   token,
		gateway: gateway,
		sms:     sms,
		email:   email,
		admins:  admins,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

func (s *Service) isPrivileged(email string) bool {
	_, ok := s.admins[email]
	return ok
}

// validPhone reports whether s is exactly 10 ASCII digits.
func validPhone(s string) bool {
	if len(s) != 10 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
