package port

import (
	"context"

	"github.com/ykumar-dev/smartdining/internal/core/domain"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type Service interface {
	// Users
	SignupUser(ctx context.Context, email string, password string) error
	LoginUser(ctx context.Context, email string, password string) (string, error)
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, email string, token string, newPassword string) error

	// Payments
	CreatePayment(ctx context.Context, userEmail string, req *domain.PaymentRequest) (*domain.PaymentSession, error)
	PaymentState(ctx context.Context, userEmail string, orderID string) (*domain.PaymentState, error)
	ApplyWebhook(ctx context.Context, orderID string, rawStatus string) error
	// Reconcile resolves the redirect-time destination for an order.
	// It never fails: on any lookup or gateway trouble it falls back
	// to the default destination with the last known local state.
	Reconcile(ctx context.Context, orderID string) string
	ListOrders(ctx context.Context) ([]*domain.Order, error)

	// Reservations
	Tables(ctx context.Context) (map[string]string, error)
	Reserve(ctx context.Context, res *domain.Reservation) error
	Unreserve(ctx context.Context, tableNumber int) error
	ListReservations(ctx context.Context) ([]*domain.Reservation, error)

	// Catalog
	AddFoodItem(ctx context.Context, item *domain.FoodItem) (*domain.FoodItem, error)
	RemoveFoodItem(ctx context.Context, id int) error
	ListFoodItems(ctx context.Context) ([]*domain.FoodItem, error)

	// Feedback
	SubmitFeedback(ctx context.Context, userEmail string, fb *domain.Feedback) error

	// OTP
	SendOTP(ctx context.Context, phoneNumber string) error
	VerifyOTP(ctx context.Context, phoneNumber string, code string) error
}
