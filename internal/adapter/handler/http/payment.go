package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"

	"github.com/ykumar-dev/smartdining/internal/core/domain"
	"github.com/ykumar-dev/smartdining/internal/core/port"
)

type PaymentHandler struct {
	Handler
	service port.Service
}

func NewPaymentHandler(service port.Service, logger *zap.Logger) (*PaymentHandler, error) {
	return &PaymentHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type createPaymentRequest struct {
	Amount      float64            `json:"amount"`
	PhoneNumber string             `json:"phone_number"`
	Items       []domain.OrderItem `json:"items"`
}

func (ph *PaymentHandler) CreatePayment(ctx *gin.Context) {
	email := getAuthPayload(ctx).Email

	req := createPaymentRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ph.handleValidationError(ctx, err)
		return
	}

	amount, err := decimal.NewFromFloat64(req.Amount)
	if err != nil {
		ph.handleError(ctx, domain.ErrInvalidAmount)
		return
	}

	session, err := ph.service.CreatePayment(ctx, email, &domain.PaymentRequest{
		Amount:      amount,
		PhoneNumber: req.PhoneNumber,
		Items:       req.Items,
	})
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, gin.H{
		"success":            true,
		"order_id":           session.OrderID,
		"payment_session_id": session.SessionID,
	})
}

func (ph *PaymentHandler) VerifyPayment(ctx *gin.Context) {
	email := getAuthPayload(ctx).Email
	orderID := ctx.Param("order_id")

	state, err := ph.service.PaymentState(ctx, email, orderID)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, gin.H{
		"success":  true,
		"order_id": state.OrderID,
		"status":   string(state.Status),
		"is_paid":  state.IsPaid,
	})
}

type webhookRequest struct {
	OrderID       string `json:"order_id"`
	PaymentStatus string `json:"payment_status"`
}

func (ph *PaymentHandler) PaymentWebhook(ctx *gin.Context) {
	req := webhookRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		ph.handleError(ctx, domain.ErrBadWebhook)
		return
	}

	if err := ph.service.ApplyWebhook(ctx, req.OrderID, req.PaymentStatus); err != nil {
		ph.handleError(ctx, err)
		return
	}

	ph.handleSuccess(ctx, gin.H{"success": true})
}

// PaymentRedirect lands the user here after checkout. The service
// resolves the destination and always produces one, so the answer is
// a 302 regardless of gateway health.
func (ph *PaymentHandler) PaymentRedirect(ctx *gin.Context) {
	orderID := ctx.Param("order_id")
	ctx.Redirect(http.StatusFound, ph.service.Reconcile(ctx, orderID))
}

type orderResp struct {
	OrderID     string             `json:"order_id"`
	UserEmail   string             `json:"email"`
	Items       []domain.OrderItem `json:"items"`
	Amount      jsonDecimal        `json:"amount"`
	PhoneNumber string             `json:"phone_number"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
}

func (ph *PaymentHandler) ListAllOrders(ctx *gin.Context) {
	list, err := ph.service.ListOrders(ctx)
	if err != nil {
		ph.handleError(ctx, err)
		return
	}

	result := make([]orderResp, 0, len(list))
	for _, o := range list {
		result = append(result, orderResp{
			OrderID:     o.OrderID,
			UserEmail:   o.UserEmail,
			Items:       o.Items,
			Amount:      jsonDecimal(o.Amount),
			PhoneNumber: o.PhoneNumber,
			Status:      string(o.Status),
			CreatedAt:   o.CreatedAt,
		})
	}

	ph.handleSuccess(ctx, result)
}
