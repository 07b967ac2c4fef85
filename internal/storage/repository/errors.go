package repository

import "errors"

// Ошибки уровня хранилища. Вызывающий код сопоставляет их через errors.Is
// и переводит в HTTP-статусы.
var (
	// ErrEmailTaken возвращается при попытке регистрации с занятым email.
	ErrEmailTaken = errors.New("email already taken")
	// ErrUserNotFound возвращается, если пользователь с указанным email не найден.
	ErrUserNotFound = errors.New("user not found")
	// ErrItemNotFound возвращается, если запись с указанным идентификатором отсутствует.
	ErrItemNotFound = errors.New("item not found")
	// ErrInvalidItemID возвращается, если внешний идентификатор не разбирается
	// в ключ хранилища. Отличается от ErrItemNotFound.
	ErrInvalidItemID = errors.New("invalid item id")
)
