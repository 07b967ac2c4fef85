// Package create реализует HTTP-обработчик для создания новых записей каталога.
//
// Handler принимает JSON-запрос с данными записи, валидирует их,
// вызывает бизнес-логику создания через сервис и возвращает созданную запись
// с идентификатором, назначенным хранилищем.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/item-registry/internal/http/response"
	"github.com/magabrotheeeer/item-registry/internal/lib/sl"
	"github.com/magabrotheeeer/item-registry/internal/models"
)

// Handler управляет HTTP-запросами на создание новых записей каталога.
type Handler struct {
	log      *slog.Logger        // Логгер для записи информации и ошибок
	service  Service             // Сервис бизнес-логики для создания записей
	validate *validator.Validate // Валидатор структуры входящих данных
}

// Service описывает интерфейс бизнес-логики создания записи.
type Service interface {
	Create(ctx context.Context, req models.DummyItem) (*models.Item, error)
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создать новую запись
// @Description Создает новую запись каталога. Возвращает запись с назначенным идентификатором.
// @Tags Items
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.DummyItem true "Данные новой записи"
// @Success 200 {object} response.Response "Созданная запись"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при создании записи"
// @Router /items [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.item.create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyItem
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	item, err := h.service.Create(r.Context(), req)
	if err != nil {
		log.Error("failed to create item", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create item"))
		return
	}

	log.Info("success to create item", slog.String("id", item.ID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"item": item,
	}))
}
