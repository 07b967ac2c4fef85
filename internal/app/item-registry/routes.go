// Package itemregistry предоставляет маршруты для основного приложения.
package itemregistry

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/item-registry/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/item-registry/internal/http/handlers/auth/me"
	"github.com/magabrotheeeer/item-registry/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/item-registry/internal/http/handlers/health"
	"github.com/magabrotheeeer/item-registry/internal/http/handlers/item/create"
	"github.com/magabrotheeeer/item-registry/internal/http/handlers/item/list"
	"github.com/magabrotheeeer/item-registry/internal/http/handlers/item/read"
	"github.com/magabrotheeeer/item-registry/internal/http/handlers/item/remove"
	"github.com/magabrotheeeer/item-registry/internal/http/handlers/item/update"
	"github.com/magabrotheeeer/item-registry/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/item-registry/internal/services/auth"
	itemservice "github.com/magabrotheeeer/item-registry/internal/services/item"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, authService *authservice.AuthService, itemService *itemservice.ItemService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, authService).ServeHTTP)
		r.Post("/token", login.New(logger, authService).ServeHTTP)
		r.Get("/health", health.New(logger).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Get("/users/me", me.New(logger).ServeHTTP)
			r.Post("/items", create.New(logger, itemService).ServeHTTP)
			r.Get("/items", list.New(logger, itemService).ServeHTTP)
			r.Get("/items/{id}", read.New(logger, itemService).ServeHTTP)
			r.Put("/items/{id}", update.New(logger, itemService).ServeHTTP)
			r.Delete("/items/{id}", remove.New(logger, itemService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
