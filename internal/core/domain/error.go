package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrInvalidCredentials         = errors.New("invalid email or password")
	ErrPasswordNotSet             = errors.New("user has not set a password")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrUnauthorized               = errors.New("user is unauthorized to access the resource")
	ErrForbidden                  = errors.New("user is forbidden to access the resource")
	ErrSignupClosed               = errors.New("email is not authorized for signup")
	ErrResetTokenInvalid          = errors.New("password reset token is invalid or expired")

	// * Payment errors.
	ErrInvalidAmount      = errors.New("amount must be a positive number")
	ErrInvalidPhoneNumber = errors.New("phone number must be 10 digits")
	ErrNoItems            = errors.New("no items provided")
	ErrOrderCreation      = errors.New("could not allocate an order identifier")
	ErrGatewayRejected    = errors.New("payment gateway rejected the session request")
	ErrGatewayUnavailable = errors.New("payment gateway is unavailable")
	ErrBadWebhook         = errors.New("webhook payload is malformed")

	// * Reservation errors.
	ErrBadTableNumber   = errors.New("table number is not valid")
	ErrTableReserved    = errors.New("table already reserved")
	ErrTableNotReserved = errors.New("table is not reserved")

	// * Catalog errors.
	ErrInvalidFoodItem = errors.New("name, valid price and image URL are required")

	// * Feedback errors.
	ErrBadRating      = errors.New("rating must be between 1 and 5")
	ErrOrderNotPaid   = errors.New("order payment not confirmed")
	ErrFeedbackExists = errors.New("feedback already submitted for this order")

	// * OTP errors.
	ErrOTPExpired  = errors.New("OTP not found or expired")
	ErrOTPMismatch = errors.New("invalid OTP")
)
