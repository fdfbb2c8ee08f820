package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/streamscore/scoreboard-hub/internal/models"
)

// CreatePayment вставляет новый платёж и возвращает сохранённую запись.
func (s *Storage) CreatePayment(ctx context.Context, payment models.Payment) (*models.Payment, error) {
	const op = "storage.CreatePayment"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO payments (id, amount, status, user_id)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, amount, status, user_id, created_at`
	row := s.DB.QueryRowContext(ctx, query,
		payment.ID, payment.Amount, payment.Status, payment.UserID)
	return scanPayment(row, op)
}

// ListPaymentsByUser возвращает платежи пользователя, новые первыми.
func (s *Storage) ListPaymentsByUser(ctx context.Context, userID string) ([]*models.Payment, error) {
	const op = "storage.ListPaymentsByUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, amount, status, user_id, created_at
			  FROM payments
			  WHERE user_id = $1
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Payment
	for rows.Next() {
		var p models.Payment
		if err := rows.Scan(&p.ID, &p.Amount, &p.Status, &p.UserID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// HasPendingPayment сообщает, есть ли у пользователя неоплаченный запрос.
func (s *Storage) HasPendingPayment(ctx context.Context, userID string) (bool, error) {
	const op = "storage.HasPendingPayment"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM payments WHERE user_id = $1 AND status = 'PENDING')`
	if err := s.DB.QueryRowContext(ctx, query, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}

// ListPaymentsWithOwners возвращает все платежи вместе с данными владельцев.
func (s *Storage) ListPaymentsWithOwners(ctx context.Context) ([]*models.PaymentWithOwner, error) {
	const op = "storage.ListPaymentsWithOwners"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT p.id, p.amount, p.status, p.user_id, p.created_at,
			      u.id, u.email, u.name
			  FROM payments p
			  JOIN users u ON u.id = p.user_id
			  ORDER BY p.created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.PaymentWithOwner
	for rows.Next() {
		var p models.PaymentWithOwner
		var ownerName sql.NullString
		if err := rows.Scan(&p.ID, &p.Amount, &p.Status, &p.UserID, &p.CreatedAt,
			&p.Owner.ID, &p.Owner.Email, &ownerName); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		p.Owner.Name = ownerName.String
		result = append(result, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdatePaymentStatus записывает новый статус платежа и возвращает обновлённую
// запись. Переходы между статусами не ограничиваются.
func (s *Storage) UpdatePaymentStatus(ctx context.Context, id, status string) (*models.Payment, error) {
	const op = "storage.UpdatePaymentStatus"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE payments
			  SET status = $2
			  WHERE id = $1
			  RETURNING id, amount, status, user_id, created_at`
	return scanPayment(s.DB.QueryRowContext(ctx, query, id, status), op)
}

func scanPayment(row *sql.Row, op string) (*models.Payment, error) {
	var p models.Payment
	if err := row.Scan(&p.ID, &p.Amount, &p.Status, &p.UserID, &p.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}
