package list

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/item-registry/internal/models"
)

// MockService реализует интерфейс list.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) List(ctx context.Context) ([]*models.Item, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]*models.Item), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestListHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "список записей",
			setupMock: func(m *MockService) {
				items := []*models.Item{
					{ID: "7b8e1d2c-9f4a-4f3b-8a6d-2c1e5f7a9b3d", Name: "Widget", Price: 9.99},
					{ID: "0f1c2a3b-4d5e-4f60-8a7b-9c0d1e2f3a4b", Name: "Gadget", Price: 5},
				}
				m.On("List", mock.Anything).Return(items, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"name":"Widget"`,
		},
		{
			name: "пустой каталог",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"items":[]`,
		},
		{
			name: "ошибка сервиса",
			setupMock: func(m *MockService) {
				m.On("List", mock.Anything).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"could not list items"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/items", nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())

			mockService.AssertExpectations(t)
		})
	}
}
