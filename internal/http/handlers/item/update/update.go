// Package update реализует HTTP-обработчик для полной замены записи каталога по ID.
//
// Частичное обновление не поддерживается: все поля записи перезаписываются
// значениями из запроса. В ответ возвращается запись в состоянии после замены.
package update

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/item-registry/internal/http/response"
	"github.com/magabrotheeeer/item-registry/internal/lib/sl"
	"github.com/magabrotheeeer/item-registry/internal/models"
	"github.com/magabrotheeeer/item-registry/internal/storage/repository"
)

// Handler управляет HTTP-запросами на полную замену записи каталога.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики замены записи.
type Service interface {
	Update(ctx context.Context, req models.DummyItem, id string) (*models.Item, error)
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
// @Summary Заменить запись
// @Description Полностью заменяет поля записи каталога по её идентификатору.
// @Tags Items
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param id path string true "Идентификатор записи"
// @Param request body models.DummyItem true "Новые данные записи"
// @Success 200 {object} response.Response "Запись после замены"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON или идентификатор"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Запись не найдена"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /items/{id} [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.item.update"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

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

	item, err := h.service.Update(r.Context(), req, id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrItemNotFound):
			log.Error("item not found", slog.String("id", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("Item not found"))
		case errors.Is(err, repository.ErrInvalidItemID):
			log.Error("invalid item id", slog.String("id", id))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid item id"))
		default:
			log.Error("failed to update item", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not update item"))
		}
		return
	}

	log.Info("success to update item", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"item": item,
	}))
}
