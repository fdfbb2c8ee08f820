package middlewarectx

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/streamscore/scoreboard-hub/internal/models"
)

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) ValidateToken(ctx context.Context, token string) (*models.Identity, error) {
	args := m.Called(ctx, token)
	if res := args.Get(0); res != nil {
		return res.(*models.Identity), args.Error(1)
	}
	return nil, args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestSessionResolver(t *testing.T) {
	identity := &models.Identity{UserID: "u1", Email: "user@example.com", Role: models.RoleUser}

	tests := []struct {
		name          string
		setupRequest  func(r *http.Request)
		setupMock     func(m *MockTokenService)
		expectFound   bool
		expectedEmail string
	}{
		{
			name:         "без токена запрос анонимный",
			setupRequest: func(_ *http.Request) {},
			setupMock:    func(_ *MockTokenService) {},
			expectFound:  false,
		},
		{
			name: "токен из заголовка Authorization",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer token123")
			},
			setupMock: func(m *MockTokenService) {
				m.On("ValidateToken", mock.Anything, "token123").Return(identity, nil)
			},
			expectFound:   true,
			expectedEmail: "user@example.com",
		},
		{
			name: "токен из cookie",
			setupRequest: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "cookie-token"})
			},
			setupMock: func(m *MockTokenService) {
				m.On("ValidateToken", mock.Anything, "cookie-token").Return(identity, nil)
			},
			expectFound:   true,
			expectedEmail: "user@example.com",
		},
		{
			name: "заголовок имеет приоритет над cookie",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer header-token")
				r.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "cookie-token"})
			},
			setupMock: func(m *MockTokenService) {
				m.On("ValidateToken", mock.Anything, "header-token").Return(identity, nil)
			},
			expectFound:   true,
			expectedEmail: "user@example.com",
		},
		{
			name: "невалидный токен дает анонимный запрос",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer expired")
			},
			setupMock: func(m *MockTokenService) {
				m.On("ValidateToken", mock.Anything, "expired").Return(nil, errors.New("token expired"))
			},
			expectFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockTokenService)
			tt.setupMock(mockService)

			var gotIdentity models.Identity
			var gotFound bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotIdentity, gotFound = IdentityFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			handler := SessionResolver(mockService, newNoopLogger())(next)

			req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
			tt.setupRequest(req)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.expectFound, gotFound)
			if tt.expectFound {
				assert.Equal(t, tt.expectedEmail, gotIdentity.Email)
			}
			mockService.AssertExpectations(t)
		})
	}
}
