package register

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/item-registry/internal/storage/repository"
)

// MockService реализует интерфейс register.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, email string, fullName *string, disabled bool, password string) (string, error) {
	args := m.Called(ctx, email, fullName, disabled, password)
	return args.String(0), args.Error(1)
}

func TestRegisterHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешная регистрация",
			body: `{"email":"a@x.com","full_name":"Alice","password":"secret123"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "a@x.com", mock.Anything, false, "secret123").
					Return("uid-1", nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"message":"user created successfully"`,
		},
		{
			name:           "некорректный JSON",
			body:           `{"email":`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid request body"`,
		},
		{
			name:           "некорректный email",
			body:           `{"email":"not-an-email","password":"secret123"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Email must be a valid email address`,
		},
		{
			name:           "короткий пароль",
			body:           `{"email":"a@x.com","password":"pw"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `field Password is shorter than the allowed minimum`,
		},
		{
			name: "занятый email",
			body: `{"email":"a@x.com","password":"secret123"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "a@x.com", mock.Anything, false, "secret123").
					Return("", fmt.Errorf("storage.RegisterUser: %w", repository.ErrEmailTaken))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"email already registered"`,
		},
		{
			name: "ошибка хранилища",
			body: `{"email":"a@x.com","password":"secret123"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "a@x.com", mock.Anything, false, "secret123").
					Return("", errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"failed to register user"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tt.expectedBody),
				"response body should contain %s, got %s", tt.expectedBody, w.Body.String())
			assert.NotContains(t, w.Body.String(), "secret123")

			mockService.AssertExpectations(t)
		})
	}
}
