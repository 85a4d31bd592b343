package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/wellness-site/internal/auth"
	"github.com/octobees/wellness-site/internal/config"
	"github.com/octobees/wellness-site/internal/entity"
	"github.com/octobees/wellness-site/internal/handler"
	middlewarepkg "github.com/octobees/wellness-site/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Auth         *handler.AuthHandler
	Status       *handler.StatusHandler
	Content      *handler.ContentHandler
	Pages        *handler.PageHandler
	Schema       *handler.SchemaHandler
	AdminContent *handler.AdminContentHandler
}

// Register wires all HTTP routes for the site API.
func Register(e *echo.Echo, cfg *config.Config, jwtManager *auth.JWTManager, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	api := e.Group("/api")
	api.GET("/status", handlers.Status.Get)
	api.GET("/business", handlers.Content.Business)
	api.GET("/services", handlers.Content.Services)
	api.GET("/services/:slug", handlers.Content.Service)
	api.GET("/faqs", handlers.Content.FAQs)
	api.GET("/faqs/:id", handlers.Content.FAQ)
	api.GET("/gallery", handlers.Content.Gallery)
	api.GET("/about", handlers.Content.About)
	api.GET("/features", handlers.Content.Features)
	api.GET("/cta", handlers.Content.CTA)
	api.GET("/navigation", handlers.Content.Navigation)
	api.GET("/pages/:page", handlers.Pages.Get)

	e.GET("/pages/:page/head", handlers.Pages.Head)
	e.GET("/schema", handlers.Schema.Types)
	e.GET("/schema/:type", handlers.Schema.Get)

	e.POST("/auth/login", handlers.Auth.Login, middlewarepkg.RateLimiter(cfg.RateLimitLogin, "/auth/login"))

	secured := e.Group("")
	secured.Use(middlewarepkg.JWT(jwtManager))

	admin := secured.Group("/admin", middlewarepkg.RequireRole(entity.RoleEditor))
	admin.POST("/content/reload", handlers.AdminContent.Reload)
}
