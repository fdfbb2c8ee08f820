// Package models содержит доменные структуры сервиса табло:
// пользователей, матчи и платежи, а также типы для приёма JSON-запросов.
package models

import "time"

// Возможные роли пользователя.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User представляет зарегистрированного пользователя системы.
type User struct {
	ID           string    `json:"id"`             // Уникальный идентификатор пользователя
	Email        string    `json:"email"`          // Электронная почта (уникальная)
	Name         string    `json:"name,omitempty"` // Отображаемое имя, может быть пустым
	PasswordHash string    `json:"-"`              // Хэш пароля, наружу не отдается
	Role         string    `json:"role"`           // Роль пользователя, USER или ADMIN
	IsPremium    bool      `json:"isPremium"`      // Признак премиум-доступа
	CreatedAt    time.Time `json:"createdAt"`
}

// Identity — аутентифицированная личность запроса, восстановленная из токена.
// Нулевое значение означает анонимный запрос.
type Identity struct {
	UserID    string
	Email     string
	Role      string
	IsPremium bool
}

// IsAdmin сообщает, имеет ли личность административную роль.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// UpdateUserRequest — входные данные административного изменения пользователя.
// Меняются только переданные поля.
type UpdateUserRequest struct {
	UserID    string  `json:"userId" validate:"required,uuid"`
	Role      *string `json:"role" validate:"omitempty,oneof=USER ADMIN"`
	IsPremium *bool   `json:"isPremium"`
}
