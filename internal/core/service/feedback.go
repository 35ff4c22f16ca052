package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/ykumar-dev/smartdining/internal/core/domain"
)

// SubmitFeedback records a rating for one of the caller's orders.
// The order must be paid, and feedback is accepted at most once per
// order.
func (s *Service) SubmitFeedback(ctx context.Context, userEmail string, fb *domain.Feedback) error {
	if fb.OrderID == "" {
		return domain.ErrBadRequest
	}
	if fb.Rating < 1 || fb.Rating > 5 {
		return domain.ErrBadRating
	}

	order, err := s.repo.ReadUserOrder(ctx, fb.OrderID, userEmail)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return domain.ErrDataNotFound
		}
		s.logger.Error("read order", zap.Error(err))
		return domain.ErrInternal
	}
	if order.Status != domain.OrderStatusPaid {
		return domain.ErrOrderNotPaid
	}

	if _, err := s.repo.ReadFeedback(ctx, fb.OrderID); err == nil {
		return domain.ErrFeedbackExists
	} else if !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("read feedback", zap.Error(err))
		return domain.ErrInternal
	}

	fb.UserEmail = userEmail
	fb.CreatedAt = time.Now()
	if err := s.repo.CreateFeedback(ctx, fb); err != nil {
		// a concurrent submission may win the race
		if errors.Is(err, domain.ErrConflictingData) {
			return domain.ErrFeedbackExists
		}
		s.logger.Error("create feedback", zap.Error(err))
		return domain.ErrInternal
	}

	return nil
}
