// Package create реализует HTTP-обработчик создания табло матча.
//
// Handler принимает JSON-запрос с названиями команд и оформлением, валидирует
// их, извлекает личность из контекста и возвращает созданный матч.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/streamscore/scoreboard-hub/internal/http/middlewarectx"
	"github.com/streamscore/scoreboard-hub/internal/http/response"
	"github.com/streamscore/scoreboard-hub/internal/lib/sl"
	"github.com/streamscore/scoreboard-hub/internal/models"
	"github.com/streamscore/scoreboard-hub/internal/services/scoreboard"
)

// Handler управляет HTTP-запросами на создание матчей.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики создания матча.
type Service interface {
	Create(ctx context.Context, userID string, req models.CreateMatchRequest) (*models.Match, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать табло матча
// @Description Создает табло для текущего пользователя. Возвращает созданный матч.
// @Tags Scoreboards
// @Accept  json
// @Produce  json
// @Param request body models.CreateMatchRequest true "Данные нового матча"
// @Success 200 {object} models.Match "Созданный матч"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или пустые команды"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /api/scoreboards [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.scoreboard.create"
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

	var req models.CreateMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("Team names are required"))
		return
	}

	match, err := h.service.Create(r.Context(), identity.UserID, req)
	if err != nil {
		if errors.Is(err, scoreboard.ErrTeamNamesRequired) {
			log.Info("create rejected: empty team names")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("Team names are required"))
			return
		}
		log.Error("failed to create match", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Internal())
		return
	}

	log.Info("match created", slog.String("id", match.ID))
	render.JSON(w, r, match)
}
