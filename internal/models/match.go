package models

import "time"

// Варианты оформления табло.
const (
	DesignModern  = "MODERN"
	DesignClassic = "CLASSIC"
)

// Match представляет собой табло матча, принадлежащее пользователю.
// Название формируется при создании как "{home} vs {away}", счёт не
// может быть отрицательным.
type Match struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	HomeTeam   string    `json:"homeTeam"`
	AwayTeam   string    `json:"awayTeam"`
	HomeScore  int       `json:"homeScore"`
	AwayScore  int       `json:"awayScore"`
	DesignType string    `json:"designType"` // MODERN или CLASSIC
	IsActive   bool      `json:"isActive"`   // Управляет видимостью публичного табло
	UserID     string    `json:"userId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// MatchOwner — краткие сведения о владельце матча для административных списков.
type MatchOwner struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// MatchWithOwner — матч вместе с данными владельца.
type MatchWithOwner struct {
	Match
	Owner MatchOwner `json:"user"`
}

// CreateMatchRequest используется для приёма данных из JSON-запроса на создание матча.
type CreateMatchRequest struct {
	HomeTeam   string `json:"homeTeam" validate:"required"`
	AwayTeam   string `json:"awayTeam" validate:"required"`
	DesignType string `json:"designType" validate:"omitempty,oneof=MODERN CLASSIC"`
}

// UpdateMatchRequest — частичное обновление матча. Непереданные поля не меняются.
type UpdateMatchRequest struct {
	HomeScore *int  `json:"homeScore"`
	AwayScore *int  `json:"awayScore"`
	IsActive  *bool `json:"isActive"`
}
