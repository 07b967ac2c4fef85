// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"errors"

	"github.com/magabrotheeeer/item-registry/internal/lib/jwt"
	"github.com/magabrotheeeer/item-registry/internal/lib/password"
	"github.com/magabrotheeeer/item-registry/internal/models"
)

// ErrInvalidCredentials возвращается при неудачном входе.
//
// Неизвестный email и неверный пароль дают одну и ту же ошибку,
// чтобы не раскрывать существование учётной записи.
var ErrInvalidCredentials = errors.New("incorrect email or password")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает его UID.
	RegisterUser(ctx context.Context, user models.User) (string, error)

	// GetUserByEmail возвращает пользователя по email или ошибку, если не найден.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// AuthService отвечает за регистрацию, авторизацию и разрешение JWT в пользователя.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля.
//
// Ошибка занятого email пробрасывается из хранилища без изменений.
func (s *AuthService) Register(ctx context.Context, email string, fullName *string, disabled bool, rawPassword string) (string, error) {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", err
	}
	user := models.User{
		Email:        email,
		FullName:     fullName,
		Disabled:     disabled,
		PasswordHash: hashed,
	}
	return s.users.RegisterUser(ctx, user)
}

// Login проверяет пароль пользователя и генерирует JWT со сроком жизни из конфигурации.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (string, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.jwtMaker.GenerateToken(user.Email)
}

// ResolveToken проверяет JWT и возвращает пользователя, которому он выдан.
//
// Токен, выданный уже удалённому пользователю, так же считается невалидным.
func (s *AuthService) ResolveToken(ctx context.Context, token string) (*models.User, error) {
	email, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, err
	}
	return s.users.GetUserByEmail(ctx, email)
}
