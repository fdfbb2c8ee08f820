package scoreboardhub

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/streamscore/scoreboard-hub/internal/http/accessgate"
	"github.com/streamscore/scoreboard-hub/internal/http/handlers/admin/matchlist"
	"github.com/streamscore/scoreboard-hub/internal/http/handlers/admin/matchremove"
	adminpaymentlist "github.com/streamscore/scoreboard-hub/internal/http/handlers/admin/paymentlist"
	"github.com/streamscore/scoreboard-hub/internal/http/handlers/admin/paymentupdate"
	"github.com/streamscore/scoreboard-hub/internal/http/handlers/admin/userlist"
	"github.com/streamscore/scoreboard-hub/internal/http/handlers/admin/userupdate"
	"github.com/streamscore/scoreboard-hub/internal/http/handlers/auth/login"
	"github.com/streamscore/scoreboard-hub/internal/http/handlers/auth/logout"
	"github.com/streamscore/scoreboard-hub/internal/http/handlers/auth/register"
	"github.com/streamscore/scoreboard-hub/internal/http/handlers/health"
	"github.com/streamscore/scoreboard-hub/internal/http/handlers/payment/paymentcreate"
	"github.com/streamscore/scoreboard-hub/internal/http/handlers/payment/paymentlist"
	"github.com/streamscore/scoreboard-hub/internal/http/handlers/scoreboard/create"
	"github.com/streamscore/scoreboard-hub/internal/http/handlers/scoreboard/list"
	"github.com/streamscore/scoreboard-hub/internal/http/handlers/scoreboard/read"
	"github.com/streamscore/scoreboard-hub/internal/http/handlers/scoreboard/remove"
	"github.com/streamscore/scoreboard-hub/internal/http/handlers/scoreboard/update"
	"github.com/streamscore/scoreboard-hub/internal/http/middlewarectx"
	"github.com/streamscore/scoreboard-hub/internal/metrics"
	adminservice "github.com/streamscore/scoreboard-hub/internal/services/admin"
	authservice "github.com/streamscore/scoreboard-hub/internal/services/auth"
	paymentservice "github.com/streamscore/scoreboard-hub/internal/services/payment"
	scoreboardservice "github.com/streamscore/scoreboard-hub/internal/services/scoreboard"
	"github.com/streamscore/scoreboard-hub/internal/storage/repository"
	"github.com/streamscore/scoreboard-hub/internal/web"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, db *repository.Storage,
	authService *authservice.Service,
	scoreboardService *scoreboardservice.Service,
	paymentService *paymentservice.Service,
	adminService *adminservice.Service,
	webHandler *web.Handler,
) {
	gate := accessgate.New(accessgate.DefaultRules())

	// Глобальные middleware: личность разрешается до гейта.
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
		metrics.Middleware,
		middlewarectx.SessionResolver(authService, logger),
		accessgate.Middleware(gate, logger),
		middlewarectx.RateLimitMiddleware(logger),
	)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", register.New(logger, authService).ServeHTTP)
		r.Post("/auth/login", login.New(logger, authService).ServeHTTP)
		r.Post("/auth/logout", logout.New(logger).ServeHTTP)

		r.Post("/scoreboards", create.New(logger, scoreboardService).ServeHTTP)
		r.Get("/scoreboards", list.New(logger, scoreboardService).ServeHTTP)
		r.Get("/scoreboards/{id}", read.New(logger, scoreboardService).ServeHTTP)
		r.Patch("/scoreboards/{id}", update.New(logger, scoreboardService).ServeHTTP)
		r.Delete("/scoreboards/{id}", remove.New(logger, scoreboardService).ServeHTTP)

		r.Post("/payments/create", paymentcreate.New(logger, paymentService).ServeHTTP)
		r.Get("/payments/user", paymentlist.New(logger, paymentService).ServeHTTP)

		r.Route("/admin", func(r chi.Router) {
			r.Get("/users", userlist.New(logger, adminService).ServeHTTP)
			r.Patch("/users", userupdate.New(logger, adminService).ServeHTTP)
			r.Get("/matches", matchlist.New(logger, adminService).ServeHTTP)
			r.Delete("/matches/{id}", matchremove.New(logger, adminService).ServeHTTP)
			r.Get("/payments", adminpaymentlist.New(logger, adminService).ServeHTTP)
			r.Patch("/payments", paymentupdate.New(logger, adminService).ServeHTTP)
		})

		r.Get("/health", health.New(logger, db.DB).ServeHTTP)
	})

	// Браузерные страницы
	r.Get("/", webHandler.Home)
	r.Get("/auth/signin", webHandler.SignIn)
	r.Get("/auth/signup", webHandler.SignUp)
	r.Get("/dashboard", webHandler.Dashboard)
	r.Get("/dashboard/create", webHandler.DashboardCreate)
	r.Get("/dashboard/billing", webHandler.DashboardBilling)
	r.Get("/dashboard/scoreboards/{id}", webHandler.Control)
	r.Get("/admin", webHandler.Admin)
	r.Get("/scoreboard/{id}", webHandler.Display)

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
