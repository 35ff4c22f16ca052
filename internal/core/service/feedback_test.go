package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/ykumar-dev/smartdining/internal/core/domain"
	"github.com/ykumar-dev/smartdining/internal/core/port/mock"
)

func TestService_SubmitFeedback(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	const email = "user@example.com"
	const orderID = "ORDER_abc_1"

	paidOrder := domain.Order{OrderID: orderID, UserEmail: email, Status: domain.OrderStatusPaid}

	type feedbackTest struct {
		name     string
		fb       domain.Feedback
		mock     prepareMocks
		expError error
	}

	tests := []feedbackTest{
		{
			name: "Submit good",
			fb:   domain.Feedback{OrderID: orderID, Rating: 5, Feedback: "great"},
			mock: func(repo *mock.MockRepository, gw *mock.MockGatewayClient) {
				repo.EXPECT().ReadUserOrder(gomock.Any(), orderID, email).Return(&paidOrder, nil)
				repo.EXPECT().ReadFeedback(gomock.Any(), orderID).Return(nil, domain.ErrDataNotFound)
				repo.EXPECT().CreateFeedback(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fb *domain.Feedback) error {
						assert.Equal(t, email, fb.UserEmail)
						assert.False(t, fb.CreatedAt.IsZero())
						return nil
					})
			},
			expError: nil,
		},
		{
			name:     "Rating out of range",
			fb:       domain.Feedback{OrderID: orderID, Rating: 6},
			mock:     func(repo *mock.MockRepository, gw *mock.MockGatewayClient) {},
			expError: domain.ErrBadRating,
		},
		{
			name: "Order not paid",
			fb:   domain.Feedback{OrderID: orderID, Rating: 4},
			mock: func(repo *mock.MockRepository, gw *mock.MockGatewayClient) {
				repo.EXPECT().ReadUserOrder(gomock.Any(), orderID, email).
					Return(&domain.Order{OrderID: orderID, UserEmail: email, Status: domain.OrderStatusPending}, nil)
			},
			expError: domain.ErrOrderNotPaid,
		},
		{
			name: "Someone else's order",
			fb:   domain.Feedback{OrderID: orderID, Rating: 4},
			mock: func(repo *mock.MockRepository, gw *mock.MockGatewayClient) {
				repo.EXPECT().ReadUserOrder(gomock.Any(), orderID, email).
					Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrDataNotFound,
		},
		{
			name: "Feedback already submitted",
			fb:   domain.Feedback{OrderID: orderID, Rating: 4},
			mock: func(repo *mock.MockRepository, gw *mock.MockGatewayClient) {
				repo.EXPECT().ReadUserOrder(gomock.Any(), orderID, email).Return(&paidOrder, nil)
				repo.EXPECT().ReadFeedback(gomock.Any(), orderID).
					Return(&domain.Feedback{OrderID: orderID}, nil)
			},
			expError: domain.ErrFeedbackExists,
		},
		{
			name: "Concurrent submission loses the race",
			fb:   domain.Feedback{OrderID: orderID, Rating: 4},
			mock: func(repo *mock.MockRepository, gw *mock.MockGatewayClient) {
				repo.EXPECT().ReadUserOrder(gomock.Any(), orderID, email).Return(&paidOrder, nil)
				repo.EXPECT().ReadFeedback(gomock.Any(), orderID).Return(nil, domain.ErrDataNotFound)
				repo.EXPECT().CreateFeedback(gomock.Any(), gomock.Any()).
					Return(domain.ErrConflictingData)
			},
			expError: domain.ErrFeedbackExists,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, _, _ := newTestService(t, mockCtrl, test.mock)

			err := s.SubmitFeedback(context.Background(), email, &test.fb)

			assert.Equal(t, test.expError, err)
		})
	}
}
