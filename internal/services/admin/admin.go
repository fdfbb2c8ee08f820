// Package admin содержит административные операции над пользователями,
// матчами и платежами.
package admin

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/streamscore/scoreboard-hub/internal/lib/rabbitmq"
	"github.com/streamscore/scoreboard-hub/internal/lib/sl"
	"github.com/streamscore/scoreboard-hub/internal/models"
)

// Ошибки административных операций.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrMatchNotFound   = errors.New("match not found")
	ErrPaymentNotFound = errors.New("payment not found")
)

// Repository определяет методы хранилища, используемые административными операциями.
type Repository interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
	UpdateUser(ctx context.Context, userID string, role *string, isPremium *bool) (*models.User, error)
	ListMatchesWithOwners(ctx context.Context) ([]*models.MatchWithOwner, error)
	RemoveMatch(ctx context.Context, id string) (int, error)
	ListPaymentsWithOwners(ctx context.Context) ([]*models.PaymentWithOwner, error)
	UpdatePaymentStatus(ctx context.Context, id, status string) (*models.Payment, error)
}

// Cache описывает инвалидацию кеша матчей.
type Cache interface {
	Invalidate(key string) error
}

// EventPublisher публикует события в очередь уведомлений.
type EventPublisher interface {
	Publish(routingKey string, message any) error
}

// Service реализует административную бизнес-логику.
type Service struct {
	repo      Repository
	cache     Cache
	publisher EventPublisher
	log       *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo Repository, cache Cache, publisher EventPublisher, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		log:       log,
	}
}

// ListUsers возвращает всех пользователей.
func (s *Service) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.repo.ListUsers(ctx)
}

// UpdateUser меняет роль и/или премиум-флаг пользователя.
func (s *Service) UpdateUser(ctx context.Context, req models.UpdateUserRequest) (*models.User, error) {
	updated, err := s.repo.UpdateUser(ctx, req.UserID, req.Role, req.IsPremium)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	s.log.Info("updated user", slog.String("id", updated.ID),
		slog.String("role", updated.Role), slog.Bool("is_premium", updated.IsPremium))
	return updated, nil
}

// ListMatches возвращает все матчи с данными владельцев.
func (s *Service) ListMatches(ctx context.Context) ([]*models.MatchWithOwner, error) {
	return s.repo.ListMatchesWithOwners(ctx)
}

// RemoveMatch удаляет любой матч без проверки владельца. Административное
// переопределение: обычное удаление фильтруется по владельцу.
func (s *Service) RemoveMatch(ctx context.Context, id string) error {
	count, err := s.repo.RemoveMatch(ctx, id)
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrMatchNotFound
	}
	if err := s.cache.Invalidate("match:" + id); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("id", id), slog.Any("err", err))
	}
	return nil
}

// ListPayments возвращает все платежи с данными владельцев.
func (s *Service) ListPayments(ctx context.Context) ([]*models.PaymentWithOwner, error) {
	return s.repo.ListPaymentsWithOwners(ctx)
}

// UpdatePayment записывает новый статус платежа. Переходы не ограничиваются.
// Для статуса PAID публикуется уведомление владельцу; премиум-флаг при этом
// не меняется — его администратор выставляет отдельной операцией.
func (s *Service) UpdatePayment(ctx context.Context, req models.UpdatePaymentRequest) (*models.Payment, error) {
	updated, err := s.repo.UpdatePaymentStatus(ctx, req.PaymentID, req.Status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	s.log.Info("updated payment status",
		slog.String("id", updated.ID), slog.String("status", updated.Status))

	if updated.Status == models.PaymentPaid {
		s.notifyPaid(ctx, updated)
	}
	return updated, nil
}

// notifyPaid публикует событие об оплате. Ошибка публикации не откатывает
// запись статуса, уведомление считается необязательным.
func (s *Service) notifyPaid(ctx context.Context, payment *models.Payment) {
	owner, err := s.repo.GetUser(ctx, payment.UserID)
	if err != nil {
		s.log.Error("failed to load payment owner", sl.Err(err))
		return
	}
	event := models.PaymentNotification{
		Email:  owner.Email,
		Name:   owner.Name,
		Amount: payment.Amount,
		Status: payment.Status,
	}
	if err := s.publisher.Publish(rabbitmq.PaymentQueue.RoutingKey, event); err != nil {
		s.log.Error("failed to publish payment notification", sl.Err(err))
		return
	}
	s.log.Info("published payment notification",
		slog.String("payment_id", payment.ID), slog.String("email", owner.Email))
}
