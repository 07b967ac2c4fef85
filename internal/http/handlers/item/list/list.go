// Package list реализует HTTP-обработчик для получения всех записей каталога.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/item-registry/internal/http/response"
	"github.com/magabrotheeeer/item-registry/internal/lib/sl"
	"github.com/magabrotheeeer/item-registry/internal/models"
)

// Handler обрабатывает запросы на получение списка записей каталога.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики получения списка записей.
type Service interface {
	List(ctx context.Context) ([]*models.Item, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список записей
// @Description Возвращает все записи каталога в порядке создания.
// @Tags Items
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.Response "Список записей"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /items [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.item.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	items, err := h.service.List(r.Context())
	if err != nil {
		log.Error("failed to list items", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list items"))
		return
	}
	if items == nil {
		items = []*models.Item{}
	}

	log.Info("success to list items", slog.Int("count", len(items)))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"items": items,
	}))
}
