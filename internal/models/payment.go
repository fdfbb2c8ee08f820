package models

import "time"

// Статусы платежа.
const (
	PaymentPending = "PENDING"
	PaymentPaid    = "PAID"
	PaymentFailed  = "FAILED"
)

// Payment представляет запрос на оплату премиум-доступа.
// Статус меняется только администратором.
type Payment struct {
	ID        string    `json:"id"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"` // PENDING, PAID или FAILED
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// PaymentWithOwner — платёж вместе с данными владельца.
type PaymentWithOwner struct {
	Payment
	Owner MatchOwner `json:"user"`
}

// UpdatePaymentRequest — входные данные административного изменения статуса платежа.
type UpdatePaymentRequest struct {
	PaymentID string `json:"paymentId" validate:"required,uuid"`
	Status    string `json:"status" validate:"required,oneof=PENDING PAID FAILED"`
}

// PaymentNotification — событие об оплате, публикуемое в очередь уведомлений.
type PaymentNotification struct {
	Email  string  `json:"email"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
}
