package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/streamscore/scoreboard-hub/internal/models"
)

// CreateMatch вставляет новый матч и возвращает сохранённую запись.
func (s *Storage) CreateMatch(ctx context.Context, match models.Match) (*models.Match, error) {
	const op = "storage.CreateMatch"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO matches (id, name, home_team, away_team, home_score,
			      away_score, design_type, is_active, user_id)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  RETURNING id, name, home_team, away_team, home_score, away_score,
			      design_type, is_active, user_id, created_at`
	row := s.DB.QueryRowContext(ctx, query,
		match.ID, match.Name, match.HomeTeam, match.AwayTeam, match.HomeScore,
		match.AwayScore, match.DesignType, match.IsActive, match.UserID)
	return scanMatch(row, op)
}

// GetMatch возвращает матч по его ID.
func (s *Storage) GetMatch(ctx context.Context, id string) (*models.Match, error) {
	const op = "storage.GetMatch"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, home_team, away_team, home_score, away_score,
			      design_type, is_active, user_id, created_at
			  FROM matches
			  WHERE id = $1`
	return scanMatch(s.DB.QueryRowContext(ctx, query, id), op)
}

// ListMatchesByOwner возвращает матчи пользователя, новые первыми.
func (s *Storage) ListMatchesByOwner(ctx context.Context, userID string) ([]*models.Match, error) {
	const op = "storage.ListMatchesByOwner"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, home_team, away_team, home_score, away_score,
			      design_type, is_active, user_id, created_at
			  FROM matches
			  WHERE user_id = $1
			  ORDER BY created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Match
	for rows.Next() {
		var m models.Match
		if err := rows.Scan(&m.ID, &m.Name, &m.HomeTeam, &m.AwayTeam, &m.HomeScore,
			&m.AwayScore, &m.DesignType, &m.IsActive, &m.UserID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListMatchesWithOwners возвращает все матчи вместе с данными владельцев, новые первыми.
func (s *Storage) ListMatchesWithOwners(ctx context.Context) ([]*models.MatchWithOwner, error) {
	const op = "storage.ListMatchesWithOwners"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT m.id, m.name, m.home_team, m.away_team, m.home_score, m.away_score,
			      m.design_type, m.is_active, m.user_id, m.created_at,
			      u.id, u.email, u.name
			  FROM matches m
			  JOIN users u ON u.id = m.user_id
			  ORDER BY m.created_at DESC`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.MatchWithOwner
	for rows.Next() {
		var m models.MatchWithOwner
		var ownerName sql.NullString
		if err := rows.Scan(&m.ID, &m.Name, &m.HomeTeam, &m.AwayTeam, &m.HomeScore,
			&m.AwayScore, &m.DesignType, &m.IsActive, &m.UserID, &m.CreatedAt,
			&m.Owner.ID, &m.Owner.Email, &ownerName); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		m.Owner.Name = ownerName.String
		result = append(result, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateMatchOwned обновляет счёт и видимость матча, принадлежащего пользователю.
// Проверка владельца свёрнута в предикат выборки: чужой или несуществующий
// матч даёт sql.ErrNoRows. Непереданные поля (nil) сохраняют прежние значения.
func (s *Storage) UpdateMatchOwned(ctx context.Context, id, ownerID string, homeScore, awayScore *int, isActive *bool) (*models.Match, error) {
	const op = "storage.UpdateMatchOwned"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE matches
			  SET home_score = COALESCE($3, home_score),
			      away_score = COALESCE($4, away_score),
			      is_active = COALESCE($5, is_active)
			  WHERE id = $1 AND user_id = $2
			  RETURNING id, name, home_team, away_team, home_score, away_score,
			      design_type, is_active, user_id, created_at`
	row := s.DB.QueryRowContext(ctx, query, id, ownerID,
		nullIntPtr(homeScore), nullIntPtr(awayScore), nullBoolPtr(isActive))
	return scanMatch(row, op)
}

// RemoveMatchOwned удаляет матч пользователя и возвращает количество удалённых строк.
func (s *Storage) RemoveMatchOwned(ctx context.Context, id, ownerID string) (int, error) {
	const op = "storage.RemoveMatchOwned"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM matches WHERE id = $1 AND user_id = $2`
	result, err := s.DB.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveMatch удаляет матч без проверки владельца. Административная операция.
func (s *Storage) RemoveMatch(ctx context.Context, id string) (int, error) {
	const op = "storage.RemoveMatch"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM matches WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

func scanMatch(row *sql.Row, op string) (*models.Match, error) {
	var m models.Match
	if err := row.Scan(&m.ID, &m.Name, &m.HomeTeam, &m.AwayTeam, &m.HomeScore,
		&m.AwayScore, &m.DesignType, &m.IsActive, &m.UserID, &m.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &m, nil
}
