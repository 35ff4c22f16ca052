package port

import (
	"context"

	"github.com/ykumar-dev/smartdining/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	// User
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	SetUserPassword(ctx context.Context, email string, passwordHash string) error

	// Order
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID string) (*domain.Order, error)
	ReadUserOrder(ctx context.Context, orderID string, userEmail string) (*domain.Order, error)
	// UpdateOrderStatus applies a single-statement conditional status
	// update and returns the number of rows changed. Terminal statuses
	// are never overwritten; setting an equal status changes 0 rows.
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) (int64, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)

	// Reservation
	CreateReservation(ctx context.Context, res *domain.Reservation) error
	DeleteReservation(ctx context.Context, tableNumber int) (int64, error)
	ListReservations(ctx context.Context) ([]*domain.Reservation, error)

	// Catalog
	CreateFoodItem(ctx context.Context, item *domain.FoodItem) (*domain.FoodItem, error)
	DeleteFoodItem(ctx context.Context, id int) (int64, error)
	ListFoodItems(ctx context.Context) ([]*domain.FoodItem, error)

	// Feedback
	CreateFeedback(ctx context.Context, fb *domain.Feedback) error
	ReadFeedback(ctx context.Context, orderID string) (*domain.Feedback, error)

	// OTP
	UpsertOTP(ctx context.Context, otp *domain.OTPCode) error
	ReadOTP(ctx context.Context, phoneNumber string) (*domain.OTPCode, error)
	DeleteOTP(ctx context.Context, phoneNumber string) error

	// Password reset
	CreateResetToken(ctx context.Context, token *domain.PasswordResetToken) error
	ReadResetToken(ctx context.Context, email string, token string) (*domain.PasswordResetToken, error)
	DeleteResetToken(ctx context.Context, email string, token string) error
}
