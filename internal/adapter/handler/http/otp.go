package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ykumar-dev/smartdining/internal/core/port"
)

type OTPHandler struct {
	Handler
	service port.Service
}

func NewOTPHandler(service port.Service, logger *zap.Logger) (*OTPHandler, error) {
	return &OTPHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type sendOTPRequest struct {
	PhoneNumber string `json:"phone_number"`
}

func (oh *OTPHandler) SendOTP(ctx *gin.Context) {
	req := sendOTPRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	if err := oh.service.SendOTP(ctx, req.PhoneNumber); err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, gin.H{
		"success": true,
		"message": "OTP sent",
	})
}

type verifyOTPRequest struct {
	PhoneNumber string `json:"phone_number"`
	OTP         string `json:"otp"`
}

func (oh *OTPHandler) VerifyOTP(ctx *gin.Context) {
	req := verifyOTPRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	if err := oh.service.VerifyOTP(ctx, req.PhoneNumber, req.OTP); err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, gin.H{
		"success": true,
		"message": "OTP verified",
	})
}
