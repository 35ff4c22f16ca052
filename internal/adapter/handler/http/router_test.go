package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ykumar-dev/smartdining/internal/adapter/auth"
	handler "github.com/ykumar-dev/smartdining/internal/adapter/handler/http"
	"github.com/ykumar-dev/smartdining/internal/core/domain"
	"github.com/ykumar-dev/smartdining/internal/core/port"
	"github.com/ykumar-dev/smartdining/internal/core/port/mock"
)

func setupRouter(t *testing.T, svc port.Service) (*handler.Router, port.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	tokenService, err := auth.New()
	require.NoError(t, err)

	userHandler, err := handler.NewUserHandler(svc, logger)
	require.NoError(t, err)
	paymentHandler, err := handler.NewPaymentHandler(svc, logger)
	require.NoError(t, err)
	reservationHandler, err := handler.NewReservationHandler(svc, logger)
	require.NoError(t, err)
	catalogHandler, err := handler.NewCatalogHandler(svc, logger)
	require.NoError(t, err)
	feedbackHandler, err := handler.NewFeedbackHandler(svc, "http://localhost:3000/food-ordering", logger)
	require.NoError(t, err)
	otpHandler, err := handler.NewOTPHandler(svc, logger)
	require.NoError(t, err)

	router, err := handler.NewRouter(tokenService, userHandler, paymentHandler,
		reservationHandler, catalogHandler, feedbackHandler, otpHandler)
	require.NoError(t, err)

	return router, tokenService
}

func bearerToken(t *testing.T, ts port.TokenService, email string, privileged bool) string {
	t.Helper()
	token, err := ts.CreateToken(&port.TokenPayload{Email: email, Privileged: privileged})
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRouter_PaymentWebhook(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	svc := mock.NewMockService(mockCtrl)
	router, _ := setupRouter(t, svc)

	t.Run("Good webhook", func(t *testing.T) {
		svc.EXPECT().ApplyWebhook(gomock.Any(), "ORDER_abc_1", "PAID").Return(nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/payment-webhook",
			strings.NewReader(`{"order_id":"ORDER_abc_1","payment_status":"PAID"}`))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, true, body["success"])
	})

	t.Run("Malformed webhook", func(t *testing.T) {
		svc.EXPECT().ApplyWebhook(gomock.Any(), "", "").Return(domain.ErrBadWebhook)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/payment-webhook",
			strings.NewReader(`{}`))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouter_PaymentRedirect(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	svc := mock.NewMockService(mockCtrl)
	router, _ := setupRouter(t, svc)

	const dest = "http://localhost:3000/feedback?order_id=ORDER_abc_1"
	svc.EXPECT().Reconcile(gomock.Any(), "ORDER_abc_1").Return(dest)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/payment-redirect/ORDER_abc_1", nil)
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, dest, rec.Header().Get("Location"))
}

func TestRouter_CreatePayment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	svc := mock.NewMockService(mockCtrl)
	router, ts := setupRouter(t, svc)

	body := `{"amount":250,"phone_number":"9876543210","items":[{"id":1,"name":"Paneer Tikka","price":120,"quantity":1}]}`

	t.Run("No token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/create-payment", strings.NewReader(body))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Create good", func(t *testing.T) {
		svc.EXPECT().CreatePayment(gomock.Any(), "user@example.com", gomock.Any()).
			Return(&domain.PaymentSession{OrderID: "ORDER_abc_1", SessionID: "sess_abc"}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/create-payment", strings.NewReader(body))
		req.Header.Set("Authorization", bearerToken(t, ts, "user@example.com", false))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ORDER_abc_1", resp["order_id"])
		assert.Equal(t, "sess_abc", resp["payment_session_id"])
	})

	t.Run("Gateway rejected", func(t *testing.T) {
		svc.EXPECT().CreatePayment(gomock.Any(), "user@example.com", gomock.Any()).
			Return(nil, domain.ErrGatewayRejected)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/create-payment", strings.NewReader(body))
		req.Header.Set("Authorization", bearerToken(t, ts, "user@example.com", false))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouter_VerifyPayment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	svc := mock.NewMockService(mockCtrl)
	router, ts := setupRouter(t, svc)

	svc.EXPECT().PaymentState(gomock.Any(), "user@example.com", "ORDER_abc_1").
		Return(&domain.PaymentState{
			OrderID: "ORDER_abc_1",
			Status:  domain.OrderStatusPaid,
			IsPaid:  true,
		}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/verify-payment/ORDER_abc_1", nil)
	req.Header.Set("Authorization", bearerToken(t, ts, "user@example.com", false))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "PAID", resp["status"])
	assert.Equal(t, true, resp["is_paid"])
}

func TestRouter_AdminRoutes(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	svc := mock.NewMockService(mockCtrl)
	router, ts := setupRouter(t, svc)

	t.Run("Regular user is forbidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/all-orders", nil)
		req.Header.Set("Authorization", bearerToken(t, ts, "user@example.com", false))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Admin lists reservations", func(t *testing.T) {
		svc.EXPECT().ListReservations(gomock.Any()).Return([]*domain.Reservation{
			{TableNumber: 2, UserName: "Asha", PhoneNumber: "9876543210"},
		}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/all-reservations", nil)
		req.Header.Set("Authorization", bearerToken(t, ts, "admin@example.com", true))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, 2.0, resp[0]["table_number"])
		assert.Equal(t, "Asha", resp[0]["user_name"])
		assert.Equal(t, "9876543210", resp[0]["phone_number"])
	})

	t.Run("Admin lists orders", func(t *testing.T) {
		svc.EXPECT().ListOrders(gomock.Any()).Return([]*domain.Order{
			{OrderID: "ORDER_abc_1", UserEmail: "user@example.com", Status: domain.OrderStatusPaid},
		}, nil)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/all-orders", nil)
		req.Header.Set("Authorization", bearerToken(t, ts, "admin@example.com", true))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp []map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 1)
		assert.Equal(t, "ORDER_abc_1", resp[0]["order_id"])
	})
}
