// Package remove реализует HTTP-обработчик для удаления записи каталога по ID.
//
// Удаление не идемпотентно: повторный запрос для уже удалённой записи даёт 404.
package remove

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
	"github.com/magabrotheeeer/item-registry/internal/storage/repository"
)

// Handler управляет HTTP-запросами на удаление записи каталога.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления записи.
type Service interface {
	Remove(ctx context.Context, id string) error
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Удалить запись
// @Description Удаляет запись каталога по её идентификатору.
// @Tags Items
// @Produce  json
// @Security BearerAuth
// @Param id path string true "Идентификатор записи"
// @Success 200 {object} response.Response "Запись удалена"
// @Failure 400 {object} response.ErrorResponse "Некорректный идентификатор"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Запись не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /items/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.item.remove"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")

	if err := h.service.Remove(r.Context(), id); err != nil {
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
			log.Error("failed to remove item", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not remove item"))
		}
		return
	}

	log.Info("success to remove item", slog.String("id", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"message": "Item deleted successfully",
	}))
}
