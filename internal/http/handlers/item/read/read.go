// Package read реализует HTTP-обработчик для получения конкретной записи каталога по ID.
//
// Handler извлекает ID из URL-параметров, вызывает бизнес-логику чтения записи
// и возвращает данные записи в JSON-формате. Отсутствующая запись даёт 404,
// неразбираемый идентификатор — 400.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/item-registry/internal/http/response"
	"github.com/magabrotheeeer/item-registry/internal/lib/sl"
	"github.com/magabrotheeeer/item-registry/internal/models"
	"github.com/magabrotheeeer/item-registry/internal/storage/repository"
)

// Handler обрабатывает запросы на получение записи по уникальному идентификатору.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики для получения записи по ID
}

// Service описывает интерфейс бизнес-логики чтения записи.
type Service interface {
	Read(ctx context.Context, id string) (*models.Item, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить запись по ID
// @Description Возвращает запись каталога по её идентификатору.
// @Tags Items
// @Produce  json
// @Security BearerAuth
// @Param id path string true "Идентификатор записи"
// @Success 200 {object} response.Response "Данные записи"
// @Failure 400 {object} response.ErrorResponse "Некорректный идентификатор"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Запись не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /items/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.item.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	res, err := h.service.Read(r.Context(), id)
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
			log.Error("failed to read item", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not read item"))
		}
		return
	}

	log.Info("success to read item", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"item": res,
	}))
}
