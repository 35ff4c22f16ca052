package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"go.uber.org/zap"

	"github.com/ykumar-dev/smartdining/internal/core/domain"
)

var errorStatusMap = map[error]int{
	domain.ErrInternal:        http.StatusInternalServerError,
	domain.ErrDataNotFound:    http.StatusNotFound,
	domain.ErrConflictingData: http.StatusConflict,

	domain.ErrBadRequest: http.StatusBadRequest,

	domain.ErrTokenCreation:              http.StatusInternalServerError,
	domain.ErrInvalidCredentials:         http.StatusUnauthorized,
	domain.ErrPasswordNotSet:             http.StatusForbidden,
	domain.ErrUnauthorized:               http.StatusUnauthorized,
	domain.ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	domain.ErrInvalidAuthorizationType:   http.StatusUnauthorized,
	domain.ErrInvalidToken:               http.StatusUnauthorized,
	domain.ErrForbidden:                  http.StatusForbidden,
	domain.ErrSignupClosed:               http.StatusForbidden,
	domain.ErrResetTokenInvalid:          http.StatusBadRequest,

	domain.ErrInvalidAmount:      http.StatusBadRequest,
	domain.ErrInvalidPhoneNumber: http.StatusBadRequest,
	domain.ErrNoItems:            http.StatusBadRequest,
	domain.ErrOrderCreation:      http.StatusInternalServerError,
	domain.ErrGatewayRejected:    http.StatusBadRequest,
	domain.ErrGatewayUnavailable: http.StatusBadGateway,
	domain.ErrBadWebhook:         http.StatusBadRequest,

	domain.ErrBadTableNumber:   http.StatusBadRequest,
	domain.ErrTableReserved:    http.StatusBadRequest,
	domain.ErrTableNotReserved: http.StatusBadRequest,

	domain.ErrInvalidFoodItem: http.StatusBadRequest,

	domain.ErrBadRating:      http.StatusBadRequest,
	domain.ErrOrderNotPaid:   http.StatusBadRequest,
	domain.ErrFeedbackExists: http.StatusBadRequest,

	domain.ErrOTPExpired:  http.StatusBadRequest,
	domain.ErrOTPMismatch: http.StatusBadRequest,
}

type jsonDecimal decimal.Decimal

func (j jsonDecimal) MarshalJSON() ([]byte, error) {
	s := fmt.Sprintf("%f", decimal.Decimal(j))
	return []byte(s), nil
}

type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// handleValidationError sends an error response for a request that
// failed body binding.
func (h *Handler) handleValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "Invalid request body",
	})
}

func (h *Handler) handleError(ctx *gin.Context, err error) {
	statusCode, ok := errorStatusMap[err]
	if !ok {
		h.logger.Error("error processing request", zap.Error(err))
		statusCode = http.StatusInternalServerError
		err = domain.ErrInternal
	}
	ctx.JSON(statusCode, gin.H{
		"success": false,
		"message": err.Error(),
	})
}

func (h *Handler) handleSuccess(ctx *gin.Context, data any) {
	h.handleSuccessWithStatus(ctx, data, http.StatusOK)
}

func (h *Handler) handleSuccessWithStatus(ctx *gin.Context, data any, status int) {
	if data != nil {
		ctx.JSON(status, data)
	} else {
		ctx.Status(status)
	}
}

// handleAbort is used by middleware, where no handler instance exists.
func handleAbort(ctx *gin.Context, err error) {
	statusCode, ok := errorStatusMap[err]
	if !ok {
		statusCode = http.StatusInternalServerError
	}
	ctx.AbortWithStatusJSON(statusCode, gin.H{
		"success": false,
		"message": err.Error(),
	})
}
