// Package paymentupdate реализует административную смену статуса платежа.
package paymentupdate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/streamscore/scoreboard-hub/internal/http/response"
	"github.com/streamscore/scoreboard-hub/internal/lib/sl"
	"github.com/streamscore/scoreboard-hub/internal/models"
	"github.com/streamscore/scoreboard-hub/internal/services/admin"
)

type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

type Service interface {
	UpdatePayment(ctx context.Context, req models.UpdatePaymentRequest) (*models.Payment, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Изменить статус платежа
// @Description Устанавливает статус платежа. Для PAID владельцу отправляется уведомление.
// @Tags Admin
// @Accept  json
// @Produce  json
// @Param request body models.UpdatePaymentRequest true "ID платежа и новый статус"
// @Success 200 {object} models.Payment "Обновленный платеж"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или статус"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} response.ErrorResponse "Платеж не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /api/admin/payments [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.paymentupdate"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.UpdatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	updated, err := h.service.UpdatePayment(r.Context(), req)
	if err != nil {
		if errors.Is(err, admin.ErrPaymentNotFound) {
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("Payment not found"))
			return
		}
		log.Error("failed to update payment", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Internal())
		return
	}

	log.Info("payment updated", slog.String("id", updated.ID), slog.String("status", updated.Status))
	render.JSON(w, r, updated)
}
