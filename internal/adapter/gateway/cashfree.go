package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/ykumar-dev/smartdining/internal/adapter/config"
	"github.com/ykumar-dev/smartdining/internal/core/domain"
	"github.com/ykumar-dev/smartdining/internal/core/port"
)

const apiVersion = "2023-08-01"

// Bounded per-call timeout so redirect-time polling cannot hang a
// user behind a slow gateway.
const requestTimeout = 5 * time.Second

// CashfreeClient talks to the Cashfree payment-gateway REST API.
type CashfreeClient struct {
	client       *http.Client
	baseURL      string
	clientID     string
	clientSecret string
	logger       *zap.Logger
}

func NewCashfreeClient(cfg *config.Gateway, logger *zap.Logger) (*CashfreeClient, error) {
	return &CashfreeClient{
		client: &http.Client{
			Timeout: requestTimeout,
		},
		baseURL:      cfg.BaseURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		logger:       logger,
	}, nil
}

type customerDetails struct {
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
}

type orderMeta struct {
	ReturnURL string `json:"return_url"`
	NotifyURL string `json:"notify_url"`
}

type sessionRequest struct {
	OrderID         string          `json:"order_id"`
	OrderAmount     float64         `json:"order_amount"`
	OrderCurrency   string          `json:"order_currency"`
	OrderNote       string          `json:"order_note"`
	CustomerDetails customerDetails `json:"customer_details"`
	OrderMeta       orderMeta       `json:"order_meta"`
}

type sessionResponse struct {
	PaymentSessionID string `json:"payment_session_id"`
	Message          string `json:"message"`
}

type statusResponse struct {
	OrderStatus string `json:"order_status"`
}

func (c *CashfreeClient) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-version", apiVersion)
	req.Header.Set("x-client-id", c.clientID)
	req.Header.Set("x-client-secret", c.clientSecret)
}

// CreateSession opens a hosted checkout session for an order and
// returns the session handle. No retry is performed.
func (c *CashfreeClient) CreateSession(ctx context.Context, req *port.SessionRequest) (string, error) {
	amount, _ := req.Amount.Float64()

	body, err := json.Marshal(sessionRequest{
		OrderID:       req.OrderID,
		OrderAmount:   amount,
		OrderCurrency: req.Currency,
		OrderNote:     req.Note,
		CustomerDetails: customerDetails{
			CustomerID:    req.CustomerID,
			CustomerName:  req.CustomerName,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
		},
		OrderMeta: orderMeta{
			ReturnURL: req.ReturnURL,
			NotifyURL: req.NotifyURL,
		},
	})
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	c.setHeaders(httpReq)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		c.logger.Error("gateway session request failed", zap.String("order", req.OrderID), zap.Error(err))
		return "", domain.ErrGatewayUnavailable
	}
	defer resp.Body.Close()

	var result sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.logger.Error("gateway session response decode", zap.String("order", req.OrderID), zap.Error(err))
		return "", domain.ErrGatewayRejected
	}

	if resp.StatusCode != http.StatusOK || result.PaymentSessionID == "" {
		c.logger.Warn("gateway rejected session request",
			zap.String("order", req.OrderID),
			zap.Int("status", resp.StatusCode),
			zap.String("message", result.Message))
		return "", domain.ErrGatewayRejected
	}

	return result.PaymentSessionID, nil
}

// QueryStatus returns the gateway's view of an order. The status
// string is best effort and defaults to PENDING when the response
// omits it.
func (c *CashfreeClient) QueryStatus(ctx context.Context, orderID string) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+orderID, http.NoBody)
	if err != nil {
		return "", err
	}
	c.setHeaders(httpReq)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		c.logger.Warn("gateway status request failed", zap.String("order", orderID), zap.Error(err))
		return "", domain.ErrGatewayUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("gateway status query rejected",
			zap.String("order", orderID), zap.Int("status", resp.StatusCode))
		return "", domain.ErrGatewayUnavailable
	}

	var result statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", domain.ErrGatewayUnavailable
	}

	if result.OrderStatus == "" {
		return string(domain.OrderStatusPending), nil
	}
	return result.OrderStatus, nil
}
