package matchlist

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/streamscore/scoreboard-hub/internal/http/response"
	"github.com/streamscore/scoreboard-hub/internal/lib/sl"
	"github.com/streamscore/scoreboard-hub/internal/models"
)

type Handler struct {
	log     *slog.Logger
	service Service
}

type Service interface {
	ListMatches(ctx context.Context) ([]*models.MatchWithOwner, error)
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.admin.matchlist"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	matches, err := h.service.ListMatches(r.Context())
	if err != nil {
		log.Error("failed to list matches", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Internal())
		return
	}
	if matches == nil {
		matches = []*models.MatchWithOwner{}
	}

	render.JSON(w, r, matches)
}
