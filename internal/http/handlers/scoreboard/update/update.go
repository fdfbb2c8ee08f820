// Package update реализует HTTP-обработчик изменения табло матча.
//
// Обновлять матч может только его владелец: чужой или несуществующий ID
// неотличимы и оба дают 404.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/streamscore/scoreboard-hub/internal/http/middlewarectx"
	"github.com/streamscore/scoreboard-hub/internal/http/response"
	"github.com/streamscore/scoreboard-hub/internal/lib/sl"
	"github.com/streamscore/scoreboard-hub/internal/models"
	"github.com/streamscore/scoreboard-hub/internal/services/scoreboard"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	Update(ctx context.Context, id, userID string, req models.UpdateMatchRequest) (*models.Match, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Обновить табло матча
// @Description Частично обновляет счет и видимость матча текущего пользователя.
// @Tags Scoreboards
// @Accept  json
// @Produce  json
// @Param id path string true "ID матча"
// @Param request body models.UpdateMatchRequest true "Изменяемые поля"
// @Success 200 {object} models.Match "Обновленный матч"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Матч не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /api/scoreboards/{id} [patch]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.scoreboard.update"

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

	id := chi.URLParam(r, "id")

	var req models.UpdateMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	match, err := h.service.Update(r.Context(), id, identity.UserID, req)
	if err != nil {
		if errors.Is(err, scoreboard.ErrMatchNotFound) {
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("Scoreboard not found"))
			return
		}
		log.Error("failed to update match", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Internal())
		return
	}

	log.Info("match updated", slog.String("id", id))
	render.JSON(w, r, match)
}
