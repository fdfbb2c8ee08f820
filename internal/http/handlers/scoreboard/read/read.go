// Package read реализует публичное чтение табло матча по ID.
//
// Аутентификация не требуется: этот маршрут опрашивает встраиваемая страница
// табло раз в две секунды. Матч возвращается и с выключенной видимостью —
// отображение неактивного табло решает страница.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

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
	Read(ctx context.Context, id string) (*models.Match, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить табло матча
// @Description Публичное чтение матча по ID для встраиваемого табло.
// @Tags Scoreboards
// @Produce  json
// @Param id path string true "ID матча"
// @Success 200 {object} models.Match "Матч"
// @Failure 404 {object} response.ErrorResponse "Матч не найден"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /api/scoreboards/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.scoreboard.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	match, err := h.service.Read(r.Context(), id)
	if err != nil {
		if errors.Is(err, scoreboard.ErrMatchNotFound) {
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("Scoreboard not found"))
			return
		}
		log.Error("failed to read match", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Internal())
		return
	}

	render.JSON(w, r, match)
}
