package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/item-registry/internal/migrations"
)

// setupTestDatabase создает тестовую БД с контейнером PostgreSQL
// и накатывает миграции проекта.
func setupTestDatabase(t *testing.T) (*Storage, func()) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "testdb",
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(3 * time.Minute),
	}

	postgresContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start container")

	host, err := postgresContainer.Host(ctx)
	require.NoError(t, err)
	port, err := postgresContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connString := fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable",
		host, port.Port())

	storage, err := New(connString)
	require.NoError(t, err)

	err = migrations.Run(storage.DB, "../../../migrations")
	require.NoError(t, err)

	cleanup := func() {
		_ = storage.DB.Close()
		_ = postgresContainer.Terminate(ctx)
	}
	return storage, cleanup
}

// TestDataFactory содержит методы для создания тестовых данных
type TestDataFactory struct {
	storage *Storage
}

// NewTestDataFactory создает новую фабрику тестовых данных
func NewTestDataFactory(storage *Storage) *TestDataFactory {
	return &TestDataFactory{storage: storage}
}

// CreateUser создает тестового пользователя и возвращает его UID
func (f *TestDataFactory) CreateUser(t *testing.T, email, passwordHash string) string {
	var uid string
	err := f.storage.DB.QueryRow(`INSERT INTO users (email, password_hash)
		VALUES ($1, $2) RETURNING uid`,
		email, passwordHash).Scan(&uid)
	require.NoError(t, err)
	return uid
}

// CreateItem создает тестовую запись каталога и возвращает её ID
func (f *TestDataFactory) CreateItem(t *testing.T, name string, description *string, price float64) string {
	var id string
	err := f.storage.DB.QueryRow(`INSERT INTO items (name, description, price)
		VALUES ($1, $2, $3) RETURNING id`,
		name, description, price).Scan(&id)
	require.NoError(t, err)
	return id
}

// TestVerification содержит общие функции для проверки результатов тестов
type TestVerification struct {
	storage *Storage
}

// NewTestVerification создает новый объект для проверки результатов
func NewTestVerification(storage *Storage) *TestVerification {
	return &TestVerification{storage: storage}
}

// VerifyItemExists проверяет существование записи в БД
func (v *TestVerification) VerifyItemExists(t *testing.T, itemID string) {
	var count int
	err := v.storage.DB.QueryRow("SELECT COUNT(*) FROM items WHERE id = $1", itemID).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

// VerifyItemDeleted проверяет удаление записи из БД
func (v *TestVerification) VerifyItemDeleted(t *testing.T, itemID string) {
	var count int
	err := v.storage.DB.QueryRow("SELECT COUNT(*) FROM items WHERE id = $1", itemID).Scan(&count)
	require.NoError(t, err)
	require.Equal(t, 0, count)
}
