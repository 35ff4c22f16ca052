package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ykumar-dev/smartdining/internal/core/port"
)

type UserHandler struct {
	Handler
	service port.Service
}

func NewUserHandler(service port.Service, logger *zap.Logger) (*UserHandler, error) {
	return &UserHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (uh *UserHandler) Signup(ctx *gin.Context) {
	req := credentialsRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	if err := uh.service.SignupUser(ctx, req.Email, req.Password); err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccessWithStatus(ctx, gin.H{
		"success": true,
		"message": "Signup successful",
	}, http.StatusCreated)
}

func (uh *UserHandler) Login(ctx *gin.Context) {
	req := credentialsRequest{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	token, err := uh.service.LoginUser(ctx, req.Email, req.Password)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccess(ctx, gin.H{
		"success": true,
		"token":   token,
	})
}

type resetRequestBody struct {
	Email string `json:"email"`
}

func (uh *UserHandler) RequestPasswordReset(ctx *gin.Context) {
	req := resetRequestBody{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	if err := uh.service.RequestPasswordReset(ctx, req.Email); err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccess(ctx, gin.H{
		"success": true,
		"message": "Reset link sent",
	})
}

type resetPasswordBody struct {
	Email       string `json:"email"`
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

func (uh *UserHandler) ResetPassword(ctx *gin.Context) {
	req := resetPasswordBody{}
	if err := ctx.ShouldBindBodyWithJSON(&req); err != nil {
		uh.handleValidationError(ctx, err)
		return
	}

	if err := uh.service.ResetPassword(ctx, req.Email, req.Token, req.NewPassword); err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccess(ctx, gin.H{
		"success": true,
		"message": "Password updated",
	})
}
