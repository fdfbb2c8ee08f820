package payment

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/streamscore/scoreboard-hub/internal/models"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreatePayment(ctx context.Context, payment models.Payment) (*models.Payment, error) {
	args := m.Called(ctx, payment)
	if res := args.Get(0); res != nil {
		return res.(*models.Payment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) ListPaymentsByUser(ctx context.Context, userID string) ([]*models.Payment, error) {
	args := m.Called(ctx, userID)
	if res := args.Get(0); res != nil {
		return res.([]*models.Payment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) HasPendingPayment(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestService_RequestPremium(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(r *MockRepository)
		expectedError error
		verify        func(t *testing.T, p *models.Payment)
	}{
		{
			name: "создается платеж с настроенной ценой в статусе PENDING",
			setupMocks: func(r *MockRepository) {
				r.On("HasPendingPayment", mock.Anything, "u1").Return(false, nil).Once()
				r.On("CreatePayment", mock.Anything, mock.MatchedBy(func(p models.Payment) bool {
					return p.Amount == 29.99 && p.Status == models.PaymentPending && p.UserID == "u1" && p.ID != ""
				})).Return(&models.Payment{
					ID: "p1", Amount: 29.99, Status: models.PaymentPending, UserID: "u1",
				}, nil).Once()
			},
			verify: func(t *testing.T, p *models.Payment) {
				assert.Equal(t, models.PaymentPending, p.Status)
				assert.Equal(t, 29.99, p.Amount)
			},
		},
		{
			name: "повторный запрос при необработанном отклоняется",
			setupMocks: func(r *MockRepository) {
				r.On("HasPendingPayment", mock.Anything, "u1").Return(true, nil).Once()
			},
			expectedError: ErrPaymentPending,
		},
		{
			name: "ошибка хранилища пробрасывается",
			setupMocks: func(r *MockRepository) {
				r.On("HasPendingPayment", mock.Anything, "u1").Return(false, errors.New("db error")).Once()
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			tt.setupMocks(repo)

			service := New(repo, 29.99, newNoopLogger())
			payment, err := service.RequestPremium(context.Background(), "u1")

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError.Error())
				assert.Nil(t, payment)
			} else {
				assert.NoError(t, err)
				tt.verify(t, payment)
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestService_ListForUser(t *testing.T) {
	expected := []*models.Payment{
		{ID: "p1", Amount: 29.99, Status: models.PaymentPaid, UserID: "u1"},
		{ID: "p2", Amount: 29.99, Status: models.PaymentPending, UserID: "u1"},
	}

	repo := new(MockRepository)
	repo.On("ListPaymentsByUser", mock.Anything, "u1").Return(expected, nil).Once()

	service := New(repo, 29.99, newNoopLogger())
	result, err := service.ListForUser(context.Background(), "u1")

	assert.NoError(t, err)
	assert.Equal(t, expected, result)
	repo.AssertExpectations(t)
}
