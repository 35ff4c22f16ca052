package port

import (
	"context"

	"github.com/govalues/decimal"
)

// SessionRequest carries everything the gateway needs to open a
// hosted checkout session for an order.
type SessionRequest struct {
	OrderID       string
	Amount        decimal.Decimal
	Currency      string
	Note          string
	CustomerID    string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	ReturnURL     string
	NotifyURL     string
}

//go:generate mockgen -source=gateway.go -destination=mock/gateway.go -package=mock
type GatewayClient interface {
	// CreateSession opens a remote checkout session and returns its
	// handle. A non-success gateway response or a response without a
	// session token fails with domain.ErrGatewayRejected.
	CreateSession(ctx context.Context, req *SessionRequest) (string, error)
	// QueryStatus returns the gateway's best-effort status string for
	// an order. Transport failures surface as domain.ErrGatewayUnavailable.
	// No retry is performed; callers decide.
	QueryStatus(ctx context.Context, orderID string) (string, error)
}
