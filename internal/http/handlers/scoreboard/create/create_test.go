package create

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/streamscore/scoreboard-hub/internal/http/middlewarectx"
	"github.com/streamscore/scoreboard-hub/internal/models"
	"github.com/streamscore/scoreboard-hub/internal/services/scoreboard"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Create(ctx context.Context, userID string, req models.CreateMatchRequest) (*models.Match, error) {
	args := m.Called(ctx, userID, req)
	if res := args.Get(0); res != nil {
		return res.(*models.Match), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	identity := models.Identity{UserID: "u1", Email: "user@example.com", Role: models.RoleUser}

	tests := []struct {
		name           string
		body           string
		authenticated  bool
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:          "успешное создание матча",
			body:          `{"homeTeam":"Tigers","awayTeam":"Lions"}`,
			authenticated: true,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, "u1", models.CreateMatchRequest{
					HomeTeam: "Tigers",
					AwayTeam: "Lions",
				}).Return(&models.Match{
					ID:         "m1",
					Name:       "Tigers vs Lions",
					HomeTeam:   "Tigers",
					AwayTeam:   "Lions",
					DesignType: models.DesignModern,
					IsActive:   true,
					UserID:     "u1",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Tigers vs Lions"`,
		},
		{
			name:           "запрос без авторизации отклоняется",
			body:           `{"homeTeam":"Tigers","awayTeam":"Lions"}`,
			authenticated:  false,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Unauthorized"}`,
		},
		{
			name:           "пустая команда отклоняется валидатором",
			body:           `{"homeTeam":"","awayTeam":"Lions"}`,
			authenticated:  true,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Team names are required"}`,
		},
		{
			name:          "команда из пробелов отклоняется сервисом",
			body:          `{"homeTeam":"   ","awayTeam":"Lions"}`,
			authenticated: true,
			setupMock: func(m *MockService) {
				m.On("Create", mock.Anything, "u1", models.CreateMatchRequest{
					HomeTeam: "   ",
					AwayTeam: "Lions",
				}).Return(nil, scoreboard.ErrTeamNamesRequired)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Team names are required"}`,
		},
		{
			name:           "некорректный JSON отклоняется",
			body:           `{not json`,
			authenticated:  true,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/scoreboards", strings.NewReader(tt.body))
			if tt.authenticated {
				req = req.WithContext(middlewarectx.WithIdentity(req.Context(), identity))
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
