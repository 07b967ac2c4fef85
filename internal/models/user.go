// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи и хэш пароля.
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

// User представляет зарегистрированного пользователя системы.
//
// PasswordHash никогда не попадает в HTTP-ответы.
type User struct {
	UID          string  // Уникальный идентификатор пользователя
	Email        string  // Электронная почта (уникальная)
	FullName     *string // Полное имя, может отсутствовать
	Disabled     bool    // Флаг отключённой учётной записи
	PasswordHash string  // Хэш пароля пользователя
}
