// Package me реализует HTTP-обработчик для получения профиля текущего пользователя.
//
// Пользователь берётся из контекста запроса, куда его добавляет JWT middleware.
// В ответ попадают только публичные поля профиля, без хэша пароля.
package me

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/item-registry/internal/http/middlewarectx"
	"github.com/magabrotheeeer/item-registry/internal/http/response"
)

// Handler обрабатывает запросы на получение профиля текущего пользователя.
type Handler struct {
	log *slog.Logger
}

// New создает новый Handler с переданным логгером.
func New(log *slog.Logger) *Handler {
	return &Handler{
		log: log,
	}
}

// ServeHTTP godoc
// @Summary Профиль текущего пользователя
// @Description Возвращает публичный профиль пользователя, которому выдан токен.
// @Tags Auth
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} response.Response "Профиль пользователя"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Router /users/me [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.me"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	user, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		log.Error("user not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("not authenticated"))
		return
	}

	log.Info("profile requested", slog.String("email", user.Email))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"email":     user.Email,
		"full_name": user.FullName,
		"disabled":  user.Disabled,
	}))
}
