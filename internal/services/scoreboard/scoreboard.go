// Package scoreboard содержит бизнес-логику работы с матчами, включая
// кеширование публичных чтений под опрос табло.
package scoreboard

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/streamscore/scoreboard-hub/internal/models"
)

// Ошибки бизнес-логики матчей.
var (
	// ErrMatchNotFound возвращается для отсутствующего матча, а также при
	// попытке изменить чужой матч: проверка владельца свёрнута в выборку.
	ErrMatchNotFound = errors.New("match not found")
	// ErrTeamNamesRequired возвращается при пустом названии одной из команд.
	ErrTeamNamesRequired = errors.New("team names are required")
)

// cacheTTL согласован с интервалом опроса публичного табло.
const cacheTTL = 2 * time.Second

// MatchRepository определяет методы для работы с матчами в хранилище.
type MatchRepository interface {
	CreateMatch(ctx context.Context, match models.Match) (*models.Match, error)
	GetMatch(ctx context.Context, id string) (*models.Match, error)
	ListMatchesByOwner(ctx context.Context, userID string) ([]*models.Match, error)
	UpdateMatchOwned(ctx context.Context, id, ownerID string, homeScore, awayScore *int, isActive *bool) (*models.Match, error)
	RemoveMatchOwned(ctx context.Context, id, ownerID string) (int, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// Service реализует бизнес-логику работы с матчами.
type Service struct {
	repo  MatchRepository
	cache Cache
	log   *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo MatchRepository, cache Cache, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create создает новый матч пользователя. Название формируется как
// "{home} vs {away}", оформление по умолчанию MODERN, табло сразу активно.
func (s *Service) Create(ctx context.Context, userID string, req models.CreateMatchRequest) (*models.Match, error) {
	if strings.TrimSpace(req.HomeTeam) == "" || strings.TrimSpace(req.AwayTeam) == "" {
		return nil, ErrTeamNamesRequired
	}
	designType := req.DesignType
	if designType == "" {
		designType = models.DesignModern
	}

	match := models.Match{
		ID:         uuid.New().String(),
		Name:       fmt.Sprintf("%s vs %s", req.HomeTeam, req.AwayTeam),
		HomeTeam:   req.HomeTeam,
		AwayTeam:   req.AwayTeam,
		DesignType: designType,
		IsActive:   true,
		UserID:     userID,
	}

	created, err := s.repo.CreateMatch(ctx, match)
	if err != nil {
		return nil, err
	}
	s.log.Info("created new match", slog.String("id", created.ID))
	return created, nil
}

// ListByOwner возвращает матчи пользователя.
func (s *Service) ListByOwner(ctx context.Context, userID string) ([]*models.Match, error) {
	return s.repo.ListMatchesByOwner(ctx, userID)
}

// Read возвращает матч по ID, используя кеш или репозиторий. Публичная
// операция: активность табло здесь не проверяется, это забота отображения.
func (s *Service) Read(ctx context.Context, id string) (*models.Match, error) {
	var result *models.Match
	cacheKey := matchCacheKey(id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("cache lookup failed", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return result, nil
	}

	result, err = s.repo.GetMatch(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, cacheTTL); err != nil {
		s.log.Warn("failed to cache match", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}

// Update обновляет счёт и видимость матча владельца. Отрицательный счёт
// прижимается к нулю, верхней границы нет. Чужой матч даёт ErrMatchNotFound.
func (s *Service) Update(ctx context.Context, id, ownerID string, req models.UpdateMatchRequest) (*models.Match, error) {
	clampScore(req.HomeScore)
	clampScore(req.AwayScore)

	updated, err := s.repo.UpdateMatchOwned(ctx, id, ownerID, req.HomeScore, req.AwayScore, req.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	cacheKey := matchCacheKey(id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return updated, nil
}

// Remove удаляет матч владельца. Чужой матч даёт ErrMatchNotFound.
func (s *Service) Remove(ctx context.Context, id, ownerID string) error {
	count, err := s.repo.RemoveMatchOwned(ctx, id, ownerID)
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrMatchNotFound
	}

	cacheKey := matchCacheKey(id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return nil
}

func matchCacheKey(id string) string {
	return "match:" + id
}

func clampScore(score *int) {
	if score != nil && *score < 0 {
		*score = 0
	}
}
