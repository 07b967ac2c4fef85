// Package login реализует HTTP-обработчик для запросов аутентификации пользователей.
//
// Запрос приходит в form-кодировке с полями username и password (username — email
// пользователя). При успешной аутентификации возвращается JSON с токеном доступа;
// при любой ошибке проверки учётных данных возвращается один и тот же общий ответ,
// не раскрывающий существование учётной записи.
package login

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/item-registry/internal/http/response"
	"github.com/magabrotheeeer/item-registry/internal/lib/sl"
)

// Service описывает интерфейс бизнес-логики аутентификации.
//
// Включает метод Login для входа пользователя по email и паролю.
type Service interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// Handler обрабатывает HTTP-запросы для авторизации.
type Handler struct {
	log     *slog.Logger // Логгер для записи операций и ошибок
	service Service      // Сервис бизнес-логики аутентификации
}

// New создает новый экземпляр Handler с указанными логгером и сервисом аутентификации.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Авторизация пользователя
// @Description Аутентифицирует пользователя по email и паролю. Возвращает токен доступа со сроком жизни 60 минут.
// @Tags Auth
// @Accept  x-www-form-urlencoded
// @Produce  json
// @Param username formData string true "Email пользователя"
// @Param password formData string true "Пароль"
// @Success 200 {object} response.Response "Успешная авторизация"
// @Failure 400 {object} response.ErrorResponse "Неверные учетные данные"
// @Router /token [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := r.ParseForm(); err != nil {
		log.Error("failed to parse form", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	// Поля не проверяются заранее: пустой или неправильно оформленный логин
	// получает тот же общий ответ, что и неверный пароль.
	token, err := h.service.Login(r.Context(), username, password)
	if err != nil {
		log.Error("login failed", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("incorrect email or password"))
		return
	}

	log.Info("login success", slog.String("email", username))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"access_token": token,
		"token_type":   "bearer",
	}))
}
