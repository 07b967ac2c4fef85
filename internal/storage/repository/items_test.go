package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/item-registry/internal/models"
)

func TestStorage_CreateAndReadItem(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	verify := NewTestVerification(storage)
	ctx := context.Background()

	description := "mechanical keyboard"
	id, err := storage.CreateItem(ctx, models.Item{
		Name:        "Keyboard",
		Description: &description,
		Price:       129.90,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)
	verify.VerifyItemExists(t, id)

	t.Run("Чтение созданной записи", func(t *testing.T) {
		item, err := storage.ReadItem(ctx, id)
		require.NoError(t, err)
		require.Equal(t, id, item.ID)
		require.Equal(t, "Keyboard", item.Name)
		require.NotNil(t, item.Description)
		require.Equal(t, description, *item.Description)
		require.Equal(t, 129.90, item.Price)
	})

	t.Run("Чтение несуществующей записи", func(t *testing.T) {
		_, err := storage.ReadItem(ctx, uuid.NewString())
		require.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("Чтение по некорректному идентификатору", func(t *testing.T) {
		_, err := storage.ReadItem(ctx, "not-a-uuid")
		require.ErrorIs(t, err, ErrInvalidItemID)
	})
}

func TestStorage_UpdateItem(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	ctx := context.Background()

	description := "old description"
	id := factory.CreateItem(t, "Mouse", &description, 25.00)

	t.Run("Полная замена записи", func(t *testing.T) {
		err := storage.UpdateItem(ctx, models.Item{
			Name:  "Wireless Mouse",
			Price: 39.50,
		}, id)
		require.NoError(t, err)

		item, err := storage.ReadItem(ctx, id)
		require.NoError(t, err)
		require.Equal(t, "Wireless Mouse", item.Name)
		require.Nil(t, item.Description, "update replaces the whole record")
		require.Equal(t, 39.50, item.Price)
	})

	t.Run("Обновление несуществующей записи", func(t *testing.T) {
		err := storage.UpdateItem(ctx, models.Item{Name: "Ghost", Price: 1}, uuid.NewString())
		require.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("Обновление по некорректному идентификатору", func(t *testing.T) {
		err := storage.UpdateItem(ctx, models.Item{Name: "Ghost", Price: 1}, "99999")
		require.ErrorIs(t, err, ErrInvalidItemID)
	})
}

func TestStorage_RemoveItem(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	verify := NewTestVerification(storage)
	ctx := context.Background()

	id := factory.CreateItem(t, "Monitor", nil, 299.00)

	t.Run("Успешное удаление", func(t *testing.T) {
		err := storage.RemoveItem(ctx, id)
		require.NoError(t, err)
		verify.VerifyItemDeleted(t, id)
	})

	t.Run("Повторное удаление той же записи", func(t *testing.T) {
		err := storage.RemoveItem(ctx, id)
		require.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("Чтение после удаления", func(t *testing.T) {
		_, err := storage.ReadItem(ctx, id)
		require.ErrorIs(t, err, ErrItemNotFound)
	})
}

func TestStorage_ListItems(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	ctx := context.Background()

	t.Run("Пустой каталог", func(t *testing.T) {
		items, err := storage.ListItems(ctx)
		require.NoError(t, err)
		require.Empty(t, items)
	})

	first := factory.CreateItem(t, "First", nil, 1.00)
	second := factory.CreateItem(t, "Second", nil, 2.00)
	third := factory.CreateItem(t, "Third", nil, 3.00)

	t.Run("Список в порядке создания", func(t *testing.T) {
		items, err := storage.ListItems(ctx)
		require.NoError(t, err)
		require.Len(t, items, 3)
		require.Equal(t, first, items[0].ID)
		require.Equal(t, second, items[1].ID)
		require.Equal(t, third, items[2].ID)
	})

	t.Run("Список отражает удаление", func(t *testing.T) {
		require.NoError(t, storage.RemoveItem(ctx, second))

		items, err := storage.ListItems(ctx)
		require.NoError(t, err)
		require.Len(t, items, 2)
		require.Equal(t, first, items[0].ID)
		require.Equal(t, third, items[1].ID)
	})
}
