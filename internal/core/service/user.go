package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ykumar-dev/smartdining/internal/core/domain"
	"github.com/ykumar-dev/smartdining/internal/core/port"
	"github.com/ykumar-dev/smartdining/internal/core/utils"
)

// SignupUser sets the password of a provisioned account.
// Registration is closed: unknown emails are rejected, and an
// account that already set a password cannot sign up again.
func (s *Service) SignupUser(ctx context.Context, email string, password string) error {
	if email == "" || password == "" {
		return domain.ErrBadRequest
	}

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return domain.ErrSignupClosed
		}
		s.logger.Error("get user", zap.Error(err))
		return domain.ErrInternal
	}
	if user.PasswordHash != "" {
		return domain.ErrConflictingData
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		s.logger.Error("hash password", zap.Error(err))
		return domain.ErrInternal
	}

	if err := s.repo.SetUserPassword(ctx, email, hash); err != nil {
		s.logger.Error("set password", zap.Error(err))
		return domain.ErrInternal
	}

	return nil
}

// LoginUser checks credentials and issues a token carrying the
// user's identity and privilege flag.
func (s *Service) LoginUser(ctx context.Context, email string, password string) (string, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		s.logger.Error("get user", zap.Error(err))
		return "", domain.ErrInternal
	}
	if user.PasswordHash == "" {
		return "", domain.ErrPasswordNotSet
	}

	if err := utils.ComparePassword(password, user.PasswordHash); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.token.CreateToken(&port.TokenPayload{
		Email:      email,
		Privileged: s.isPrivileged(email),
	})
	if err != nil {
		s.logger.Error("create token", zap.Error(err))
		return "", domain.ErrTokenCreation
	}

	return token, nil
}

// RequestPasswordReset stores a single-use token and mails the
// reset link to the account's address.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	if email == "" {
		return domain.ErrBadRequest
	}

	if _, err := s.repo.GetUserByEmail(ctx, email); err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return domain.ErrDataNotFound
		}
		s.logger.Error("get user", zap.Error(err))
		return domain.ErrInternal
	}

	token := &domain.PasswordResetToken{
		Email:     email,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(s.cfg.ResetTTL),
	}
	if err := s.repo.CreateResetToken(ctx, token); err != nil {
		s.logger.Error("store reset token", zap.Error(err))
		return domain.ErrInternal
	}

	link := fmt.Sprintf("%s?token=%s&email=%s", s.cfg.ResetURL, token.Token, email)
	body := fmt.Sprintf(
		"Hello,\n\nYou requested a password reset for your Smart Dining account.\n"+
			"Please follow the link below to reset your password:\n%s\n\n"+
			"This link will expire in %d minutes.\n\n"+
			"If you didn't request this, please ignore this email.\n",
		link, int(s.cfg.ResetTTL.Minutes()))

	if err := s.email.SendEmail(email, "Password Reset Verification", body); err != nil {
		s.logger.Error("send reset email", zap.Error(err))
		return domain.ErrInternal
	}

	return nil
}

// ResetPassword consumes a reset token and replaces the password.
// Expiry is checked on read; an expired token is removed on access.
func (s *Service) ResetPassword(ctx context.Context, email string, token string, newPassword string) error {
	if email == "" || token == "" || newPassword == "" {
		return domain.ErrBadRequest
	}

	stored, err := s.repo.ReadResetToken(ctx, email, token)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return domain.ErrResetTokenInvalid
		}
		s.logger.Error("read reset token", zap.Error(err))
		return domain.ErrInternal
	}
	if time.Now().After(stored.ExpiresAt) {
		if err := s.repo.DeleteResetToken(ctx, email, token); err != nil {
			s.logger.Error("evict expired reset token", zap.Error(err))
		}
		return domain.ErrResetTokenInvalid
	}

	if _, err := s.repo.GetUserByEmail(ctx, email); err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return domain.ErrDataNotFound
		}
		s.logger.Error("get user", zap.Error(err))
		return domain.ErrInternal
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		s.logger.Error("hash password", zap.Error(err))
		return domain.ErrInternal
	}
	if err := s.repo.SetUserPassword(ctx, email, hash); err != nil {
		s.logger.Error("set password", zap.Error(err))
		return domain.ErrInternal
	}

	if err := s.repo.DeleteResetToken(ctx, email, token); err != nil {
		s.logger.Error("delete reset token", zap.Error(err))
	}

	return nil
}
