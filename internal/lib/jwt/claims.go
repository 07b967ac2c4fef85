// Package jwt реализует генерацию и парсинг JWT токенов доступа.
//
// Maker определяет интерфейс для создания и проверки токенов с subject-идентификатором
// пользователя. MakerImpl — конкретная реализация с использованием секретного ключа
// и срока жизни токена.
package jwt

import (
	"time"
)

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
//
// Subject токена — email пользователя; других пользовательских claim полей нет.
type Maker interface {
	// GenerateToken создает подписанный токен с указанным email в качестве subject.
	GenerateToken(email string) (string, error)
	// ParseToken проверяет подпись и срок жизни токена и возвращает subject.
	ParseToken(tokenStr string) (string, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и времени жизни токена (TTL).
type MakerImpl struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewJWTMaker создаёт новый экземпляр MakerImpl на основе секретного ключа и TTL.
func NewJWTMaker(secretKey string, ttl time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}
