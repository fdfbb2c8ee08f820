// Package payment содержит бизнес-логику запросов на оплату премиум-доступа.
//
// Платёжный провайдер не интегрирован: запрос создаётся в статусе PENDING,
// а оплаченным его помечает администратор.
package payment

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/streamscore/scoreboard-hub/internal/models"
)

// ErrPaymentPending возвращается при попытке создать второй запрос,
// пока предыдущий не обработан.
var ErrPaymentPending = errors.New("payment request already pending")

// PaymentRepository определяет методы для работы с платежами в хранилище.
type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment models.Payment) (*models.Payment, error)
	ListPaymentsByUser(ctx context.Context, userID string) ([]*models.Payment, error)
	HasPendingPayment(ctx context.Context, userID string) (bool, error)
}

// Service реализует бизнес-логику платежей пользователя.
type Service struct {
	repo  PaymentRepository
	price float64
	log   *slog.Logger
}

// New создает новый экземпляр Service с фиксированной ценой премиум-доступа.
func New(repo PaymentRepository, price float64, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		price: price,
		log:   log,
	}
}

// RequestPremium создает запрос на оплату премиум-доступа в статусе PENDING.
// Сумма всегда равна настроенной цене, значения клиента игнорируются.
func (s *Service) RequestPremium(ctx context.Context, userID string) (*models.Payment, error) {
	pending, err := s.repo.HasPendingPayment(ctx, userID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, ErrPaymentPending
	}

	payment := models.Payment{
		ID:     uuid.New().String(),
		Amount: s.price,
		Status: models.PaymentPending,
		UserID: userID,
	}
	created, err := s.repo.CreatePayment(ctx, payment)
	if err != nil {
		return nil, err
	}
	s.log.Info("created premium payment request",
		slog.String("id", created.ID), slog.String("user_id", userID))
	return created, nil
}

// ListForUser возвращает историю платежей пользователя.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]*models.Payment, error) {
	return s.repo.ListPaymentsByUser(ctx, userID)
}
