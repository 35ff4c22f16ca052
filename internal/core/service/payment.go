package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ykumar-dev/smartdining/internal/core/domain"
	"github.com/ykumar-dev/smartdining/internal/core/port"
)

const orderCurrency = "INR"

// One regeneration after a duplicate-key insert, then give up.
const orderIDAttempts = 2

// newOrderID combines a random component with the current unix time.
// The store's unique index is the backstop for the residual
// collision chance.
func newOrderID() string {
	return fmt.Sprintf("ORDER_%s_%d", uuid.NewString()[:8], time.Now().Unix())
}

// CreatePayment validates the request, opens a gateway checkout
// session and persists a PENDING order. On any failure no local
// state is left behind: the order is inserted only after the
// gateway accepted the session.
func (s *Service) CreatePayment(ctx context.Context, userEmail string, req *domain.PaymentRequest) (*domain.PaymentSession, error) {
	if !req.Amount.IsPos() {
		return nil, domain.ErrInvalidAmount
	}
	if !validPhone(req.PhoneNumber) {
		return nil, domain.ErrInvalidPhoneNumber
	}
	if len(req.Items) == 0 {
		return nil, domain.ErrNoItems
	}

	for attempt := 0; attempt < orderIDAttempts; attempt++ {
		orderID := newOrderID()

		sessionID, err := s.gateway.CreateSession(ctx, &port.SessionRequest{
			OrderID:       orderID,
			Amount:        req.Amount,
			Currency:      orderCurrency,
			Note:          "Payment for order",
			CustomerID:    "CUST_" + req.PhoneNumber[len(req.PhoneNumber)-4:],
			CustomerName:  "Customer",
			CustomerEmail: userEmail,
			CustomerPhone: req.PhoneNumber,
			ReturnURL:     s.cfg.ReturnURLBase + "/" + orderID,
			NotifyURL:     s.cfg.NotifyURL,
		})
		if err != nil {
			return nil, err
		}

		order := &domain.Order{
			OrderID:     orderID,
			UserEmail:   userEmail,
			Items:       req.Items,
			Amount:      req.Amount,
			PhoneNumber: req.PhoneNumber,
			Status:      domain.OrderStatusPending,
			CreatedAt:   time.Now(),
		}
		if _, err := s.repo.CreateOrder(ctx, order); err != nil {
			if errors.Is(err, domain.ErrConflictingData) {
				s.logger.Warn("order id collision, regenerating", zap.String("order", orderID))
				continue
			}
			s.logger.Error("create order", zap.Error(err))
			return nil, domain.ErrInternal
		}

		return &domain.PaymentSession{OrderID: orderID, SessionID: sessionID}, nil
	}

	return nil, domain.ErrOrderCreation
}

// PaymentState returns the owner-scoped payment status of an order.
// Absent and not-owned are indistinguishable to the caller.
func (s *Service) PaymentState(ctx context.Context, userEmail string, orderID string) (*domain.PaymentState, error) {
	order, err := s.repo.ReadUserOrder(ctx, orderID, userEmail)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrDataNotFound
		}
		s.logger.Error("read order", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return &domain.PaymentState{
		OrderID: order.OrderID,
		Status:  order.Status,
		IsPaid:  order.Status == domain.OrderStatusPaid,
	}, nil
}

// ApplyWebhook applies a gateway status notification. Applying the
// same status twice changes nothing on the second delivery, and an
// unknown order is acknowledged without error so the gateway does
// not retry business no-ops.
func (s *Service) ApplyWebhook(ctx context.Context, orderID string, rawStatus string) error {
	if orderID == "" || rawStatus == "" {
		return domain.ErrBadWebhook
	}

	status := domain.OrderStatus(strings.ToUpper(rawStatus))

	n, err := s.repo.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		s.logger.Error("webhook status update", zap.String("order", orderID), zap.Error(err))
		return domain.ErrInternal
	}
	if n == 0 {
		s.logger.Debug("webhook changed nothing",
			zap.String("order", orderID), zap.String("status", string(status)))
	}

	return nil
}

// Reconcile resolves the destination for a user returning from the
// gateway's hosted checkout. Webhook delivery is not guaranteed to
// win the race against the redirect, so a stale local status is
// refreshed by polling the gateway; if the gateway is unavailable
// the last known local state decides (fail open).
func (s *Service) Reconcile(ctx context.Context, orderID string) string {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		if !errors.Is(err, domain.ErrDataNotFound) {
			s.logger.Error("reconcile read order", zap.String("order", orderID), zap.Error(err))
		}
		return s.cfg.OrderingURL
	}

	if order.Status != domain.OrderStatusPaid {
		remote, err := s.gateway.QueryStatus(ctx, orderID)
		if err != nil {
			s.logger.Warn("gateway status poll failed, keeping local status",
				zap.String("order", orderID), zap.Error(err))
		} else {
			status := domain.OrderStatus(strings.ToUpper(remote))
			if _, err := s.repo.UpdateOrderStatus(ctx, orderID, status); err != nil {
				s.logger.Error("reconcile status update", zap.String("order", orderID), zap.Error(err))
			}
		}

		order, err = s.repo.ReadOrder(ctx, orderID)
		if err != nil {
			s.logger.Error("reconcile re-read order", zap.String("order", orderID), zap.Error(err))
			return s.cfg.OrderingURL
		}
	}

	if order.Status == domain.OrderStatusPaid {
		return s.cfg.FeedbackURL + "?order_id=" + orderID
	}
	return s.cfg.OrderingURL
}

// ListOrders returns every order, for privileged callers.
func (s *Service) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		s.logger.Error("list orders", zap.Error(err))
		return nil, domain.ErrInternal
	}
	return orders, nil
}
