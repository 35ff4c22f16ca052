package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/ykumar-dev/smartdining/internal/core/domain"
)

// Codes are sent to Indian mobile numbers.
const phoneCountryPrefix = "+91"

// SendOTP generates a 4-digit code, stores it with an explicit
// expiry and delivers it by SMS. A repeated send replaces the
// previous code for the number.
func (s *Service) SendOTP(ctx context.Context, phoneNumber string) error {
	if !validPhone(phoneNumber) {
		return domain.ErrInvalidPhoneNumber
	}

	code := fmt.Sprintf("%04d", rand.Intn(9000)+1000)

	otp := &domain.OTPCode{
		PhoneNumber: phoneNumber,
		Code:        code,
		ExpiresAt:   time.Now().Add(s.cfg.OTPTTL),
	}
	if err := s.repo.UpsertOTP(ctx, otp); err != nil {
		s.logger.Error("store otp", zap.Error(err))
		return domain.ErrInternal
	}

	if err := s.sms.SendSMS(ctx, phoneCountryPrefix+phoneNumber, "Your OTP is: "+code); err != nil {
		s.logger.Error("send otp sms", zap.Error(err))
		return domain.ErrInternal
	}

	return nil
}

// VerifyOTP checks a code. Expiry is checked on read and an expired
// code is evicted on access, not by a background sweep. A matching
// code is consumed.
func (s *Service) VerifyOTP(ctx context.Context, phoneNumber string, code string) error {
	otp, err := s.repo.ReadOTP(ctx, phoneNumber)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return domain.ErrOTPExpired
		}
		s.logger.Error("read otp", zap.Error(err))
		return domain.ErrInternal
	}

	if time.Now().After(otp.ExpiresAt) {
		if err := s.repo.DeleteOTP(ctx, phoneNumber); err != nil {
			s.logger.Error("evict expired otp", zap.Error(err))
		}
		return domain.ErrOTPExpired
	}

	if otp.Code != code {
		return domain.ErrOTPMismatch
	}

	if err := s.repo.DeleteOTP(ctx, phoneNumber); err != nil {
		s.logger.Error("consume otp", zap.Error(err))
		return domain.ErrInternal
	}

	return nil
}
