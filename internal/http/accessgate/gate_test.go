package accessgate

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/streamscore/scoreboard-hub/internal/http/middlewarectx"
	"github.com/streamscore/scoreboard-hub/internal/models"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func userIdentity() *models.Identity {
	return &models.Identity{UserID: "u1", Email: "user@example.com", Role: models.RoleUser}
}

func adminIdentity() *models.Identity {
	return &models.Identity{UserID: "a1", Email: "admin@example.com", Role: models.RoleAdmin}
}

func TestGate_Decide(t *testing.T) {
	gate := New(DefaultRules())

	tests := []struct {
		name        string
		method      string
		path        string
		identity    *models.Identity
		expected    Decision
		redirectURL string
	}{
		{
			name:        "аноним на страницу админки уходит на вход",
			method:      http.MethodGet,
			path:        "/admin",
			identity:    nil,
			expected:    Redirect,
			redirectURL: SignInURL,
		},
		{
			name:        "пользователь на странице админки уходит на главную",
			method:      http.MethodGet,
			path:        "/admin",
			identity:    userIdentity(),
			expected:    Redirect,
			redirectURL: HomeURL,
		},
		{
			name:     "администратор проходит на страницу админки",
			method:   http.MethodGet,
			path:     "/admin",
			identity: adminIdentity(),
			expected: Allow,
		},
		{
			name:        "аноним в кабинете уходит на вход",
			method:      http.MethodGet,
			path:        "/dashboard/billing",
			identity:    nil,
			expected:    Redirect,
			redirectURL: SignInURL,
		},
		{
			name:     "пользователь проходит в кабинет",
			method:   http.MethodGet,
			path:     "/dashboard",
			identity: userIdentity(),
			expected: Allow,
		},
		{
			name:     "аноним на админском API получает 401",
			method:   http.MethodGet,
			path:     "/api/admin/users",
			identity: nil,
			expected: Unauthorized,
		},
		{
			name:     "пользователь на админском API получает 403",
			method:   http.MethodGet,
			path:     "/api/admin/users",
			identity: userIdentity(),
			expected: Forbidden,
		},
		{
			name:     "администратор проходит на админский API",
			method:   http.MethodDelete,
			path:     "/api/admin/matches/42",
			identity: adminIdentity(),
			expected: Allow,
		},
		{
			name:     "аноним на списке табло получает 401",
			method:   http.MethodGet,
			path:     "/api/scoreboards",
			identity: nil,
			expected: Unauthorized,
		},
		{
			name:     "публичное чтение табло по id доступно анониму",
			method:   http.MethodGet,
			path:     "/api/scoreboards/9e3b",
			identity: nil,
			expected: Allow,
		},
		{
			name:     "изменение табло анонимом получает 401",
			method:   http.MethodPatch,
			path:     "/api/scoreboards/9e3b",
			identity: nil,
			expected: Unauthorized,
		},
		{
			name:     "вложенный путь табло не публичен",
			method:   http.MethodGet,
			path:     "/api/scoreboards/9e3b/extra",
			identity: nil,
			expected: Unauthorized,
		},
		{
			name:     "похожий префикс не попадает под правило",
			method:   http.MethodGet,
			path:     "/api/dashboard-extra",
			identity: nil,
			expected: Allow,
		},
		{
			name:     "неохраняемый путь пропускается",
			method:   http.MethodGet,
			path:     "/scoreboard/9e3b",
			identity: nil,
			expected: Allow,
		},
		{
			name:     "главная страница открыта",
			method:   http.MethodGet,
			path:     "/",
			identity: nil,
			expected: Allow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := gate.Decide(tt.method, tt.path, tt.identity)
			assert.Equal(t, tt.expected, outcome.Decision)
			if tt.expected == Redirect {
				assert.Equal(t, tt.redirectURL, outcome.RedirectURL)
			}
		})
	}
}

func TestGate_LongestPrefixWins(t *testing.T) {
	gate := New([]Rule{
		{Prefix: "/api", Kind: APIAuth},
		{Prefix: "/api/public", Kind: APIAuth, PublicGetByID: true},
	})

	// Более длинный префикс должен примениться первым.
	outcome := gate.Decide(http.MethodGet, "/api/public/123", nil)
	assert.Equal(t, Allow, outcome.Decision)

	outcome = gate.Decide(http.MethodGet, "/api/other/123", nil)
	assert.Equal(t, Unauthorized, outcome.Decision)
}

func TestMiddleware(t *testing.T) {
	gate := New(DefaultRules())
	logger := newNoopLogger()

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := Middleware(gate, logger)(next)

	tests := []struct {
		name           string
		method         string
		path           string
		identity       *models.Identity
		expectedStatus int
		expectedBody   string
		location       string
	}{
		{
			name:           "аноним на /admin перенаправляется",
			method:         http.MethodGet,
			path:           "/admin",
			expectedStatus: http.StatusFound,
			location:       SignInURL,
		},
		{
			name:           "аноним на админском API получает 401",
			method:         http.MethodGet,
			path:           "/api/admin/users",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Unauthorized"}`,
		},
		{
			name:           "пользователь на админском API получает 403",
			method:         http.MethodGet,
			path:           "/api/admin/users",
			identity:       userIdentity(),
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"error":"Forbidden"}`,
		},
		{
			name:           "открытый путь доходит до обработчика",
			method:         http.MethodGet,
			path:           "/api/scoreboards/42",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.identity != nil {
				req = req.WithContext(middlewarectx.WithIdentity(req.Context(), *tt.identity))
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
			if tt.location != "" {
				assert.Equal(t, tt.location, w.Header().Get("Location"))
			}
		})
	}
}
