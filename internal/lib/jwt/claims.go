// Package jwt реализует генерацию и парсинг JWT токенов с пользовательскими claim полями.
//
// Maker — интерфейс для генерации и проверки токенов, MakerImpl — конкретная
// реализация с использованием секретного ключа и срока жизни токена.
package jwt

import "time"

// Maker описывает контракт генерации и валидации JWT.
type Maker interface {
	GenerateToken(userID, email, role string, isPremium bool) (string, error)
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена.
type MakerImpl struct {
	secretKey string
	tokenTTL  time.Duration
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
