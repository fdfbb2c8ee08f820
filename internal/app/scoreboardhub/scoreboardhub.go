// Package scoreboardhub собирает HTTP-приложение: хранилище, кеш, очередь
// уведомлений, сервисы и маршруты.
package scoreboardhub

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/streadway/amqp"

	"github.com/streamscore/scoreboard-hub/internal/cache"
	"github.com/streamscore/scoreboard-hub/internal/config"
	"github.com/streamscore/scoreboard-hub/internal/lib/jwt"
	"github.com/streamscore/scoreboard-hub/internal/lib/rabbitmq"
	"github.com/streamscore/scoreboard-hub/internal/migrations"
	adminservice "github.com/streamscore/scoreboard-hub/internal/services/admin"
	authservice "github.com/streamscore/scoreboard-hub/internal/services/auth"
	paymentservice "github.com/streamscore/scoreboard-hub/internal/services/payment"
	scoreboardservice "github.com/streamscore/scoreboard-hub/internal/services/scoreboard"
	"github.com/streamscore/scoreboard-hub/internal/storage/repository"
	"github.com/streamscore/scoreboard-hub/internal/web"
)

// App — собранное HTTP-приложение со всеми зависимостями.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	rabbit *amqp.Connection
}

// New создает приложение: подключает Postgres, прогоняет миграции,
// поднимает Redis и RabbitMQ, собирает сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	rabbitConn, err := rabbitmq.Connect(cfg.RabbitConnection, 5, 2*time.Second)
	if err != nil {
		return nil, err
	}
	channel, err := rabbitmq.SetupChannel(rabbitConn, []rabbitmq.QueueConfig{rabbitmq.PaymentQueue})
	if err != nil {
		return nil, err
	}
	publisher := rabbitmq.NewPublisher(channel, rabbitmq.Exchange)

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)
	authService := authservice.New(db, jwtMaker)
	scoreboardService := scoreboardservice.New(db, cacheRedis, logger)
	paymentService := paymentservice.New(db, cfg.PremiumPrice, logger)
	adminService := adminservice.New(db, cacheRedis, publisher, logger)

	webHandler, err := web.New(logger)
	if err != nil {
		return nil, err
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, db,
		authService, scoreboardService, paymentService, adminService, webHandler)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		rabbit: rabbitConn,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		_ = a.rabbit.Close()
		_ = a.db.DB.Close()
		return err
	}
}
