package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ykumar-dev/smartdining/internal/core/domain"
	"github.com/ykumar-dev/smartdining/internal/core/port"
)

type FeedbackHandler struct {
	Handler
	service port.Service
	// orderingURL is where the frontend sends the user after a
	// successful submission.
	orderingURL string
}

func NewFeedbackHandler(service port.Service, orderingURL string, logger *zap.Logger) (*FeedbackHandler, error) {
	return &FeedbackHandler{
		Handler:     *NewHandler(logger),
		service:     service,
		orderingURL: orderingURL,
	}, nil
}

type feedbackRequest struct {
	OrderID  string `json:"order_id"`
	Rating   int    `json:"rating"`
	Feedback string `json:"feedback"`
}

func (fh *FeedbackHandler) Submit(ctx *gin.Context) {
	email := getAuthPayload(ctx).Email

	req := feedbackRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		fh.handleValidationError(ctx, err)
		return
	}

	err := fh.service.SubmitFeedback(ctx, email, &domain.Feedback{
		OrderID:  req.OrderID,
		Rating:   req.Rating,
		Feedback: req.Feedback,
	})
	if err != nil {
		fh.handleError(ctx, err)
		return
	}

	fh.handleSuccessWithStatus(ctx, gin.H{
		"success":      true,
		"message":      "Feedback submitted",
		"redirect_url": fh.orderingURL,
	}, http.StatusCreated)
}
