package service_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/ykumar-dev/smartdining/internal/core/domain"
	"github.com/ykumar-dev/smartdining/internal/core/port/mock"
	"github.com/ykumar-dev/smartdining/internal/core/service"
)

func TestService_SendOTP(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	t.Run("Send good", func(t *testing.T) {
		repo := mock.NewMockRepository(mockCtrl)
		ts := mock.NewMockTokenService(mockCtrl)
		gw := mock.NewMockGatewayClient(mockCtrl)
		sms := mock.NewMockSMSSender(mockCtrl)
		email := mock.NewMockEmailSender(mockCtrl)

		var storedCode string
		repo.EXPECT().UpsertOTP(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, otp *domain.OTPCode) error {
				assert.Equal(t, "9876543210", otp.PhoneNumber)
				assert.Regexp(t, regexp.MustCompile(`^\d{4}$`), otp.Code)
				assert.True(t, otp.ExpiresAt.After(time.Now()))
				storedCode = otp.Code
				return nil
			})
		sms.EXPECT().SendSMS(gomock.Any(), "+919876543210", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, message string) error {
				assert.Contains(t, message, storedCode)
				return nil
			})

		s, err := service.NewService(repo, ts, gw, sms, email, testConfig(), logger)
		assert.NoError(t, err)

		assert.NoError(t, s.SendOTP(context.Background(), "9876543210"))
	})

	t.Run("Bad phone number", func(t *testing.T) {
		s, _, _ := newTestService(t, mockCtrl, nil)

		err := s.SendOTP(context.Background(), "12345")

		assert.Equal(t, domain.ErrInvalidPhoneNumber, err)
	})
}

func TestService_VerifyOTP(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	const phone = "9876543210"

	type verifyOTPTest struct {
		name     string
		code     string
		mock     prepareMocks
		expError error
	}

	tests := []verifyOTPTest{
		{
			name: "Verify good consumes the code",
			code: "1234",
			mock: func(repo *mock.MockRepository, gw *mock.MockGatewayClient) {
				repo.EXPECT().ReadOTP(gomock.Any(), phone).
					Return(&domain.OTPCode{
						PhoneNumber: phone,
						Code:        "1234",
						ExpiresAt:   time.Now().Add(time.Minute),
					}, nil)
				repo.EXPECT().DeleteOTP(gomock.Any(), phone).Return(nil)
			},
			expError: nil,
		},
		{
			name: "Wrong code is not consumed",
			code: "9999",
			mock: func(repo *mock.MockRepository, gw *mock.MockGatewayClient) {
				repo.EXPECT().ReadOTP(gomock.Any(), phone).
					Return(&domain.OTPCode{
						PhoneNumber: phone,
						Code:        "1234",
						ExpiresAt:   time.Now().Add(time.Minute),
					}, nil)
			},
			expError: domain.ErrOTPMismatch,
		},
		{
			name: "Expired code is evicted on read",
			code: "1234",
			mock: func(repo *mock.MockRepository, gw *mock.MockGatewayClient) {
				repo.EXPECT().ReadOTP(gomock.Any(), phone).
					Return(&domain.OTPCode{
						PhoneNumber: phone,
						Code:        "1234",
						ExpiresAt:   time.Now().Add(-time.Minute),
					}, nil)
				repo.EXPECT().DeleteOTP(gomock.Any(), phone).Return(nil)
			},
			expError: domain.ErrOTPExpired,
		},
		{
			name: "No code on record",
			code: "1234",
			mock: func(repo *mock.MockRepository, gw *mock.MockGatewayClient) {
				repo.EXPECT().ReadOTP(gomock.Any(), phone).
					Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrOTPExpired,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, _, _ := newTestService(t, mockCtrl, test.mock)

			err := s.VerifyOTP(context.Background(), phone, test.code)

			assert.Equal(t, test.expError, err)
		})
	}
}
