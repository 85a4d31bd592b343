package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/octobees/wellness-site/internal/auth"
	"github.com/octobees/wellness-site/internal/config"
	"github.com/octobees/wellness-site/internal/content"
	"github.com/octobees/wellness-site/internal/entity"
	"github.com/octobees/wellness-site/internal/handler"
	middlewarepkg "github.com/octobees/wellness-site/internal/middleware"
	"github.com/octobees/wellness-site/internal/repository"
	"github.com/octobees/wellness-site/internal/router"
	"github.com/octobees/wellness-site/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	store, err := content.NewStore(cfg.ContentPath)
	if err != nil {
		log.Fatalf("failed to load site content: %v", err)
	}
	source := cfg.ContentPath
	if source == "" {
		source = "embedded"
	}
	log.Printf("site content loaded source=%s services=%d faqs=%d", source, len(store.Current().Services), len(store.Current().FAQs))

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	editorsRepo := repository.NewStaticEditorsRepository(entity.NewEditor(cfg.EditorEmail, cfg.EditorPasswordHash))
	if editorsRepo.Len() == 0 {
		log.Printf("no editor configured; admin endpoints will reject every login")
	}

	authService := service.NewAuthService(editorsRepo, jwtManager)
	siteService := service.NewSiteService(store, cfg.Timezone, cfg.PhoneRegion)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, jwtManager, router.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Status:       handler.NewStatusHandler(siteService, cfg.StatusRefresh),
		Content:      handler.NewContentHandler(siteService),
		Pages:        handler.NewPageHandler(siteService),
		Schema:       handler.NewSchemaHandler(siteService),
		AdminContent: handler.NewAdminContentHandler(store),
	})

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("listening on :%s timezone=%s", cfg.Port, cfg.Timezone)
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		log.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
