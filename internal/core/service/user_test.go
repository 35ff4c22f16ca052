package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/ykumar-dev/smartdining/internal/adapter/auth"
	"github.com/ykumar-dev/smartdining/internal/core/domain"
	"github.com/ykumar-dev/smartdining/internal/core/port/mock"
	"github.com/ykumar-dev/smartdining/internal/core/service"
	"github.com/ykumar-dev/smartdining/internal/core/utils"
)

func TestService_SignupUser(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	type signupTest struct {
		name     string
		email    string
		password string
		mock     prepareMocks
		expError error
	}

	tests := []signupTest{
		{
			name:     "Signup on provisioned account",
			email:    "user@example.com",
			password: "secret",
			mock: func(repo *mock.MockRepository, gw *mock.MockGatewayClient) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "user@example.com").
					Return(&domain.User{Email: "user@example.com"}, nil)
				repo.EXPECT().SetUserPassword(gomock.Any(), "user@example.com", gomock.Any()).
					Return(nil)
			},
			expError: nil,
		},
		{
			name:     "Unknown email is rejected",
			email:    "stranger@example.com",
			password: "secret",
			mock: func(repo *mock.MockRepository, gw *mock.MockGatewayClient) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "stranger@example.com").
					Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrSignupClosed,
		},
		{
			name:     "Password already set",
			email:    "user@example.com",
			password: "secret",
			mock: func(repo *mock.MockRepository, gw *mock.MockGatewayClient) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "user@example.com").
					Return(&domain.User{Email: "user@example.com", PasswordHash: "hash"}, nil)
			},
			expError: domain.ErrConflictingData,
		},
		{
			name:     "Empty password",
			email:    "user@example.com",
			password: "",
			mock:     func(repo *mock.MockRepository, gw *mock.MockGatewayClient) {},
			expError: domain.ErrBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, _, _ := newTestService(t, mockCtrl, test.mock)

			err := s.SignupUser(context.Background(), test.email, test.password)

			assert.Equal(t, test.expError, err)
		})
	}
}

func TestService_LoginUser(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	hashedPass, _ := utils.HashPassword("secret")
	user := domain.User{ID: 1, Email: "user@example.com", PasswordHash: hashedPass}
	admin := domain.User{ID: 2, Email: "admin@example.com", PasswordHash: hashedPass}

	type loginTest struct {
		name          string
		email         string
		password      string
		mock          prepareMocks
		expError      error
		expPrivileged bool
	}

	tests := []loginTest{
		{
			name:     "Login good",
			email:    user.Email,
			password: "secret",
			mock: func(repo *mock.MockRepository, gw *mock.MockGatewayClient) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(&user, nil)
			},
			expError:      nil,
			expPrivileged: false,
		},
		{
			name:     "Admin gets privileged token",
			email:    admin.Email,
			password: "secret",
			mock: func(repo *mock.MockRepository, gw *mock.MockGatewayClient) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), admin.Email).Return(&admin, nil)
			},
			expError:      nil,
			expPrivileged: true,
		},
		{
			name:     "Password bad",
			email:    user.Email,
			password: "hacker",
			mock: func(repo *mock.MockRepository, gw *mock.MockGatewayClient) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(&user, nil)
			},
			expError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Unknown email",
			email:    "hacker@example.com",
			password: "secret",
			mock: func(repo *mock.MockRepository, gw *mock.MockGatewayClient) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "hacker@example.com").
					Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Password never set",
			email:    "fresh@example.com",
			password: "secret",
			mock: func(repo *mock.MockRepository, gw *mock.MockGatewayClient) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "fresh@example.com").
					Return(&domain.User{Email: "fresh@example.com"}, nil)
			},
			expError: domain.ErrPasswordNotSet,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockRepository(mockCtrl)
			gw := mock.NewMockGatewayClient(mockCtrl)
			sms := mock.NewMockSMSSender(mockCtrl)
			email := mock.NewMockEmailSender(mockCtrl)
			test.mock(repo, gw)

			ts, err := auth.New()
			assert.NoError(t, err)

			s, err := service.NewService(repo, ts, gw, sms, email, testConfig(), logger)
			assert.NoError(t, err)

			token, err := s.LoginUser(context.Background(), test.email, test.password)
			assert.Equal(t, test.expError, err)

			if token != "" {
				payload, err := ts.VerifyToken(token)
				assert.NoError(t, err)
				assert.Equal(t, test.email, payload.Email)
				assert.Equal(t, test.expPrivileged, payload.Privileged)
			}
		})
	}
}

func TestService_ResetPassword(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	const email = "user@example.com"
	const token = "reset-token"

	type resetTest struct {
		name     string
		mock     prepareMocks
		expError error
	}

	tests := []resetTest{
		{
			name: "Reset good",
			mock: func(repo *mock.MockRepository, gw *mock.MockGatewayClient) {
				repo.EXPECT().ReadResetToken(gomock.Any(), email, token).
					Return(&domain.PasswordResetToken{
						Email:     email,
						Token:     token,
						ExpiresAt: time.Now().Add(10 * time.Minute),
					}, nil)
				repo.EXPECT().GetUserByEmail(gomock.Any(), email).
					Return(&domain.User{Email: email}, nil)
				repo.EXPECT().SetUserPassword(gomock.Any(), email, gomock.Any()).Return(nil)
				repo.EXPECT().DeleteResetToken(gomock.Any(), email, token).Return(nil)
			},
			expError: nil,
		},
		{
			name: "Expired token is evicted on read",
			mock: func(repo *mock.MockRepository, gw *mock.MockGatewayClient) {
				repo.EXPECT().ReadResetToken(gomock.Any(), email, token).
					Return(&domain.PasswordResetToken{
						Email:     email,
						Token:     token,
						ExpiresAt: time.Now().Add(-time.Minute),
					}, nil)
				repo.EXPECT().DeleteResetToken(gomock.Any(), email, token).Return(nil)
			},
			expError: domain.ErrResetTokenInvalid,
		},
		{
			name: "Unknown token",
			mock: func(repo *mock.MockRepository, gw *mock.MockGatewayClient) {
				repo.EXPECT().ReadResetToken(gomock.Any(), email, token).
					Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrResetTokenInvalid,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, _, _ := newTestService(t, mockCtrl, test.mock)

			err := s.ResetPassword(context.Background(), email, token, "newpass")

			assert.Equal(t, test.expError, err)
		})
	}
}
