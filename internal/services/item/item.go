// Package services содержит бизнес-логику для управления записями каталога и кешированием.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/item-registry/internal/models"
)

// ItemRepository определяет методы для работы с записями каталога в хранилище.
type ItemRepository interface {
	// CreateItem добавляет новую запись и возвращает её идентификатор.
	CreateItem(ctx context.Context, item models.Item) (string, error)
	// ReadItem возвращает запись по идентификатору.
	ReadItem(ctx context.Context, id string) (*models.Item, error)
	// UpdateItem полностью заменяет поля записи по идентификатору.
	UpdateItem(ctx context.Context, item models.Item, id string) error
	// RemoveItem удаляет запись по идентификатору.
	RemoveItem(ctx context.Context, id string) error
	// ListItems возвращает все записи каталога.
	ListItems(ctx context.Context) ([]*models.Item, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// ItemService реализует бизнес-логику работы с записями каталога, включая кеширование.
type ItemService struct {
	repo  ItemRepository
	cache Cache
	log   *slog.Logger
}

// NewItemService создает новый экземпляр ItemService.
func NewItemService(repo ItemRepository, cache Cache, log *slog.Logger) *ItemService {
	return &ItemService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// Create создает новую запись каталога, кеширует её и возвращает запись
// с идентификатором, назначенным хранилищем.
func (s *ItemService) Create(ctx context.Context, req models.DummyItem) (*models.Item, error) {
	item := models.Item{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
	}

	id, err := s.repo.CreateItem(ctx, item)
	if err != nil {
		return nil, err
	}
	item.ID = id

	s.log.Info("created new item", slog.String("id", id))

	cacheKey := fmt.Sprintf("item:%s", id)
	if err := s.cache.Set(cacheKey, item, time.Hour); err != nil {
		s.log.Warn("failed to cache item", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return &item, nil
}

// Read возвращает запись по идентификатору, используя кеш или репозиторий.
func (s *ItemService) Read(ctx context.Context, id string) (*models.Item, error) {
	var result *models.Item
	cacheKey := fmt.Sprintf("item:%s", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("failed to read from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found {
		return result, nil
	}
	result, err = s.repo.ReadItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to add to cache", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}

// Update полностью заменяет поля записи и обновляет кеш.
//
// Возвращает запись в состоянии после замены.
func (s *ItemService) Update(ctx context.Context, req models.DummyItem, id string) (*models.Item, error) {
	item := models.Item{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
	}
	if err := s.repo.UpdateItem(ctx, item, id); err != nil {
		return nil, err
	}
	s.log.Info("updated item in storage", slog.String("id", id))

	cacheKey := fmt.Sprintf("item:%s", id)
	if err := s.cache.Set(cacheKey, item, time.Hour); err != nil {
		s.log.Warn("failed to cache item", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return &item, nil
}

// Remove удаляет запись по идентификатору и инвалидирует кеш.
func (s *ItemService) Remove(ctx context.Context, id string) error {
	cacheKey := fmt.Sprintf("item:%s", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return s.repo.RemoveItem(ctx, id)
}

// List возвращает все записи каталога.
//
// Список не кешируется: каждый вызов читает свежий срез данных.
func (s *ItemService) List(ctx context.Context) ([]*models.Item, error) {
	return s.repo.ListItems(ctx)
}
