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

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/hearthlocal/local-finder/api/internal/ai"
	"github.com/hearthlocal/local-finder/api/internal/config"
	"github.com/hearthlocal/local-finder/api/internal/handler"
	middlewarepkg "github.com/hearthlocal/local-finder/api/internal/middleware"
	"github.com/hearthlocal/local-finder/api/internal/places"
	"github.com/hearthlocal/local-finder/api/internal/router"
	"github.com/hearthlocal/local-finder/api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// The text-generation provider is optional: without it, search degrades
	// to literal keyword lookups with the pre-filter only.
	var llm llms.Model
	if cfg.GeminiAPIKey != "" {
		model, err := googleai.New(context.Background(),
			googleai.WithAPIKey(cfg.GeminiAPIKey),
			googleai.WithDefaultModel(cfg.GeminiModel),
		)
		if err != nil {
			log.Printf("text-generation provider unavailable, continuing without it: %v", err)
		} else {
			llm = model
		}
	} else {
		log.Printf("GEMINI_API_KEY not set, AI stages disabled")
	}

	httpClient := &http.Client{Timeout: 15 * time.Second}
	placesClient := places.NewClient(httpClient, cfg.PlacesBaseURL, cfg.PlacesAPIKey, cfg.PublicBaseURL)

	searchService := service.NewSearchService(ai.NewTranslator(llm), placesClient, ai.NewCurator(llm))
	detailsService := service.NewDetailsService(placesClient, cfg.PhoneRegion)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging())
	e.Use(echoMiddleware.Recover())

	router.Register(e, cfg, router.Handlers{
		Search:  handler.NewSearchHandler(searchService, placesClient.Configured()),
		Photo:   handler.NewPhotoHandler(placesClient),
		Details: handler.NewDetailsHandler(detailsService, placesClient.Configured()),
	})

	serverErr := make(chan error, 1)
	go func() {
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
