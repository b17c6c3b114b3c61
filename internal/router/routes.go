package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hearthlocal/local-finder/api/internal/config"
	"github.com/hearthlocal/local-finder/api/internal/handler"
	middlewarepkg "github.com/hearthlocal/local-finder/api/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Search  *handler.SearchHandler
	Photo   *handler.PhotoHandler
	Details *handler.DetailsHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, handlers Handlers) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.GET("/search", handlers.Search.Search, middlewarepkg.SearchRateLimiter(cfg.RateLimitSearch))
	e.GET("/photo", handlers.Photo.Proxy)
	e.GET("/details", handlers.Details.Get)
}
