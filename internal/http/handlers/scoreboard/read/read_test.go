package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/streamscore/scoreboard-hub/internal/models"
	"github.com/streamscore/scoreboard-hub/internal/services/scoreboard"
)

// MockService реализует интерфейс read.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Read(ctx context.Context, id string) (*models.Match, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*models.Match), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestReadHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		matchID        string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "успешное чтение матча",
			matchID: "m1",
			setupMock: func(m *MockService) {
				match := &models.Match{
					ID:         "m1",
					Name:       "Tigers vs Lions",
					HomeTeam:   "Tigers",
					AwayTeam:   "Lions",
					HomeScore:  2,
					AwayScore:  1,
					DesignType: models.DesignModern,
					IsActive:   true,
				}
				m.On("Read", mock.Anything, "m1").Return(match, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Tigers vs Lions"`,
		},
		{
			name:    "неактивный матч все равно возвращается",
			matchID: "m2",
			setupMock: func(m *MockService) {
				match := &models.Match{ID: "m2", Name: "A vs B", IsActive: false}
				m.On("Read", mock.Anything, "m2").Return(match, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"isActive":false`,
		},
		{
			name:    "отсутствующий матч дает 404",
			matchID: "missing",
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, "missing").Return(nil, scoreboard.ErrMatchNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Scoreboard not found"}`,
		},
		{
			name:    "ошибка сервиса дает 500",
			matchID: "m3",
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, "m3").Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/api/scoreboards/"+tt.matchID, nil)
			// Устанавливаем URL params с помощью роутера chi
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.matchID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
