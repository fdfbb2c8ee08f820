// Package paymentcreate реализует HTTP-обработчик запроса на оплату
// премиум-доступа. Сумма берется из конфигурации сервера, тело запроса
// не читается.
package paymentcreate

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/streamscore/scoreboard-hub/internal/http/middlewarectx"
	"github.com/streamscore/scoreboard-hub/internal/http/response"
	"github.com/streamscore/scoreboard-hub/internal/lib/sl"
	"github.com/streamscore/scoreboard-hub/internal/models"
	"github.com/streamscore/scoreboard-hub/internal/services/payment"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	RequestPremium(ctx context.Context, userID string) (*models.Payment, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Запросить премиум-доступ
// @Description Создает запрос на оплату премиум-доступа в статусе PENDING.
// @Tags Payments
// @Produce  json
// @Success 200 {object} models.Payment "Созданный платеж"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 409 {object} response.ErrorResponse "Уже есть необработанный запрос"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /api/payments/create [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.payment.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	identity, ok := middlewarectx.IdentityFromContext(r.Context())
	if !ok {
		log.Error("identity not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Unauthorized())
		return
	}

	created, err := h.service.RequestPremium(r.Context(), identity.UserID)
	if err != nil {
		if errors.Is(err, payment.ErrPaymentPending) {
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, response.Error("Payment request already pending"))
			return
		}
		log.Error("failed to create payment request", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Internal())
		return
	}

	log.Info("payment request created", slog.String("id", created.ID))
	render.JSON(w, r, created)
}
