package http

import (
	"github.com/gin-gonic/gin"

	"github.com/ykumar-dev/smartdining/internal/core/port"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	tokenService port.TokenService,
	userHandler *UserHandler,
	paymentHandler *PaymentHandler,
	reservationHandler *ReservationHandler,
	catalogHandler *CatalogHandler,
	feedbackHandler *FeedbackHandler,
	otpHandler *OTPHandler) (*Router, error) {

	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api")
	{
		api.POST("/signup", userHandler.Signup)
		api.POST("/login", userHandler.Login)
		api.POST("/request-password-reset", userHandler.RequestPasswordReset)
		api.POST("/reset-password", userHandler.ResetPassword)

		api.POST("/send-otp", otpHandler.SendOTP)
		api.POST("/verify-otp", otpHandler.VerifyOTP)

		// Gateway-facing endpoints carry no session token.
		api.GET("/payment-redirect/:order_id", paymentHandler.PaymentRedirect)
		api.POST("/payment-webhook", paymentHandler.PaymentWebhook)

		authed := api.Group("")
		{
			authed.Use(authCheck(tokenService))
			authed.POST("/create-payment", paymentHandler.CreatePayment)
			authed.GET("/verify-payment/:order_id", paymentHandler.VerifyPayment)
			authed.GET("/food-items", catalogHandler.ListFoodItems)
			authed.GET("/tables", reservationHandler.Tables)
			authed.POST("/reserve", reservationHandler.Reserve)
			authed.POST("/unreserve", reservationHandler.Unreserve)
			authed.POST("/submit-feedback", feedbackHandler.Submit)

			admin := authed.Group("")
			{
				admin.Use(adminCheck())
				admin.POST("/add-food-item", catalogHandler.AddFoodItem)
				admin.POST("/remove-food-item", catalogHandler.RemoveFoodItem)
				admin.GET("/all-orders", paymentHandler.ListAllOrders)
				admin.GET("/all-reservations", reservationHandler.ListAllReservations)
			}
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
