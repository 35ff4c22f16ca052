package notify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ykumar-dev/smartdining/internal/adapter/config"
)

// TwilioSMS delivers text messages through the Twilio REST API.
type TwilioSMS struct {
	client     *http.Client
	baseURL    string
	accountSID string
	authToken  string
	from       string
	logger     *zap.Logger
}

func NewTwilioSMS(cfg *config.SMS, logger *zap.Logger) (*TwilioSMS, error) {
	return &TwilioSMS{
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		baseURL:    cfg.BaseURL,
		accountSID: cfg.AccountSID,
		authToken:  cfg.AuthToken,
		from:       cfg.From,
		logger:     logger,
	}, nil
}

func (t *TwilioSMS) SendSMS(ctx context.Context, phoneNumber string, message string) error {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", t.baseURL, t.accountSID)

	form := url.Values{}
	form.Set("To", phoneNumber)
	form.Set("From", t.from)
	form.Set("Body", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(t.accountSID, t.authToken)

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		t.logger.Error("sms delivery rejected",
			zap.String("to", phoneNumber), zap.Int("status", resp.StatusCode))
		return fmt.Errorf("sms delivery failed with status %d", resp.StatusCode)
	}

	return nil
}
