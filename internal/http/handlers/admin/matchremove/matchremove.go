// Package matchremove реализует административное удаление матча.
// Владелец не проверяется: администратор может удалить любой матч.
package matchremove

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
	"github.com/streamscore/scoreboard-hub/internal/services/admin"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	RemoveMatch(ctx context.Context, id string) error
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.matchremove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	if err := h.service.RemoveMatch(r.Context(), id); err != nil {
		if errors.Is(err, admin.ErrMatchNotFound) {
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("Scoreboard not found"))
			return
		}
		log.Error("failed to remove match", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Internal())
		return
	}

	log.Info("match removed by admin", slog.String("id", id))
	render.JSON(w, r, response.Success())
}
