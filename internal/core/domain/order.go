package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "PENDING"
	OrderStatusPaid    OrderStatus = "PAID"
	OrderStatusFailed  OrderStatus = "FAILED"
)

// Terminal reports whether the status ends the payment lifecycle.
// Terminal statuses are never overwritten by later updates.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusPaid || s == OrderStatusFailed
}

// OrderItem is a single line of an order. The payment core treats
// items as opaque beyond the order being non-empty.
type OrderItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name,omitempty"`
	Price    float64 `json:"price,omitempty"`
	Quantity int     `json:"quantity,omitempty"`
}

// Order is one checkout attempt and its payment status.
// Only Status changes after creation; orders are never deleted.
type Order struct {
	OrderID     string
	UserEmail   string
	Items       []OrderItem
	Amount      decimal.Decimal
	PhoneNumber string
	Status      OrderStatus
	CreatedAt   time.Time
}

// PaymentRequest is the validated input for creating a payment.
type PaymentRequest struct {
	Amount      decimal.Decimal
	PhoneNumber string
	Items       []OrderItem
}

// PaymentSession is the result of a successful payment creation:
// the local order identifier plus the gateway's hosted checkout handle.
type PaymentSession struct {
	OrderID   string
	SessionID string
}

// PaymentState is the owner-scoped view of an order's payment progress.
type PaymentState struct {
	OrderID string
	Status  OrderStatus
	IsPaid  bool
}
