package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/item-registry/internal/models"
)

// parseItemID разбирает внешний строковый идентификатор в ключ хранилища.
//
// Некорректная строка даёт ErrInvalidItemID, а не ErrItemNotFound.
func parseItemID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, ErrInvalidItemID
	}
	return parsed, nil
}

// CreateItem вставляет новую запись каталога и возвращает её идентификатор,
// назначенный базой данных.
func (s *Storage) CreateItem(ctx context.Context, item models.Item) (string, error) {
	const op = "storage.CreateItem"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO items (name, description, price)
			  VALUES ($1, $2, $3)
			  RETURNING id`
	var newID string
	err := s.DB.QueryRowContext(ctx, query,
		item.Name, item.Description, item.Price).Scan(&newID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newID, nil
}

// ReadItem возвращает данные записи по её идентификатору.
func (s *Storage) ReadItem(ctx context.Context, id string) (*models.Item, error) {
	const op = "storage.ReadItem"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	key, err := parseItemID(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `SELECT id, name, description, price
			  FROM items WHERE id = $1`
	row := s.DB.QueryRowContext(ctx, query, key)

	var result models.Item
	var description sql.NullString
	if err := row.Scan(&result.ID, &result.Name, &description, &result.Price); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, ErrItemNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if description.Valid {
		result.Description = &description.String
	}
	return &result, nil
}

// UpdateItem полностью заменяет поля записи по её идентификатору.
//
// Частичное обновление не поддерживается: name, description и price
// перезаписываются вместе. Если запись отсутствует, возвращает ErrItemNotFound.
func (s *Storage) UpdateItem(ctx context.Context, item models.Item, id string) error {
	const op = "storage.UpdateItem"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	key, err := parseItemID(id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `UPDATE items
			  SET name = $1, description = $2, price = $3
			  WHERE id = $4`
	result, err := s.DB.ExecContext(ctx, query,
		item.Name, item.Description, item.Price, key)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrItemNotFound)
	}
	return nil
}

// RemoveItem удаляет запись по идентификатору.
//
// Повторное удаление той же записи возвращает ErrItemNotFound.
func (s *Storage) RemoveItem(ctx context.Context, id string) error {
	const op = "storage.RemoveItem"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	key, err := parseItemID(id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query := `DELETE FROM items WHERE id = $1`
	result, err := s.DB.ExecContext(ctx, query, key)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s: %w", op, ErrItemNotFound)
	}
	return nil
}

// ListItems возвращает все записи каталога в порядке создания.
//
// Каждый вызов читает свежий срез данных.
func (s *Storage) ListItems(ctx context.Context) ([]*models.Item, error) {
	const op = "storage.ListItems"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, price
			  FROM items
			  ORDER BY created_at, id`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Item
	for rows.Next() {
		var item models.Item
		var description sql.NullString
		if err := rows.Scan(&item.ID, &item.Name, &description, &item.Price); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if description.Valid {
			item.Description = &description.String
		}
		result = append(result, &item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}
