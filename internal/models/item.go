// Package models содержит доменные структуры, описывающие запись каталога,
// а также вспомогательные типы для работы с данными из внешних источников (JSON-запросы).
package models

// Item представляет собой основную модель записи каталога,
// используемую в бизнес-логике и хранилище.
// Идентификатор назначается хранилищем при создании и далее неизменен.
type Item struct {
	ID          string  `json:"id"`                    // Уникальный идентификатор записи
	Name        string  `json:"name"`                  // Название записи
	Description *string `json:"description,omitempty"` // Описание, может отсутствовать
	Price       float64 `json:"price"`                 // Цена, без привязки к валюте
}

// DummyItem используется для приёма данных из JSON-запроса,
// прежде чем конвертировать их в Item.
// Идентификатор здесь отсутствует: им владеет хранилище.
type DummyItem struct {
	Name        string   `json:"name" validate:"required"`  // Название записи
	Description *string  `json:"description"`               // Описание (опционально)
	Price       *float64 `json:"price" validate:"required"` // Цена: поле обязательно, значение любое
}
