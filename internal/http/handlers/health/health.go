// Package health реализует проверку живости сервиса.
package health

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/streamscore/scoreboard-hub/internal/http/response"
	"github.com/streamscore/scoreboard-hub/internal/lib/sl"
)

type Handler struct {
	log *slog.Logger
	db  *sql.DB
}

func New(log *slog.Logger, db *sql.DB) *Handler {
	return &Handler{log: log, db: db}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		h.log.Error("database ping failed", sl.Err(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		render.JSON(w, r, response.Error("database unavailable"))
		return
	}
	render.JSON(w, r, map[string]string{"status": "ok"})
}
