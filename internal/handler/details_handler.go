package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hearthlocal/local-finder/api/internal/dto"
)

// DetailsProvider fetches an enriched single-place record.
type DetailsProvider interface {
	Get(ctx context.Context, placeID string) (*dto.DetailsResponse, error)
}

// DetailsHandler exposes the extended single-business endpoint.
type DetailsHandler struct {
	service     DetailsProvider
	placesReady bool
}

// NewDetailsHandler creates a details handler.
func NewDetailsHandler(service DetailsProvider, placesReady bool) *DetailsHandler {
	return &DetailsHandler{service: service, placesReady: placesReady}
}

// Get handles GET /details requests.
func (h *DetailsHandler) Get(c echo.Context) error {
	placeID := c.QueryParam("place_id")
	if placeID == "" {
		return Error(c, http.StatusBadRequest, "Missing parameter: place_id")
	}

	if !h.placesReady {
		return Error(c, http.StatusInternalServerError, "Places API key not configured on server")
	}

	resp, err := h.service.Get(c.Request().Context(), placeID)
	if err != nil {
		return ProviderError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}
