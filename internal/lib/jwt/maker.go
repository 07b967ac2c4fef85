// Package jwt реализует генерацию и парсинг JWT токенов доступа.
//
// Методы GenerateToken и ParseToken реализуют создание и валидацию токена
// с подписью HS256 и стандартными claims (Subject, IssuedAt, ExpiresAt).
package jwt

import (
	"fmt"

	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken создает JWT токен с email пользователя в качестве subject,
// подписывая его секретным ключом.
//
// Время жизни токена определяется полем tokenTTL.
func (j *MakerImpl) GenerateToken(email string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(j.tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

// ParseToken парсит JWT токен, проверяет его подпись и срок действия,
// возвращает subject (email пользователя), если токен корректен.
//
// Некорректный формат, неверная подпись и истекший срок различимы только
// по тексту обёрнутой ошибки: вызывающая сторона отвечает на все три
// случая одинаково.
func (j *MakerImpl) ParseToken(tokenStr string) (string, error) {
	const op = "jwt.ParseToken"
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(_ *jwt.Token) (any, error) {
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("%s: invalid token", op)
	}
	return claims.Subject, nil
}
