package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hearthlocal/local-finder/api/internal/dto"
	"github.com/hearthlocal/local-finder/api/internal/places"
)

// SearchRunner executes the search-and-curation pipeline.
type SearchRunner interface {
	Search(ctx context.Context, params dto.SearchParams) (*dto.SearchResponse, error)
}

// SearchHandler exposes the nearby small-business search endpoint.
type SearchHandler struct {
	service     SearchRunner
	placesReady bool
}

// NewSearchHandler creates a search handler. placesReady reflects whether a
// places credential is configured; without one every search is rejected
// before any outbound call.
func NewSearchHandler(service SearchRunner, placesReady bool) *SearchHandler {
	return &SearchHandler{service: service, placesReady: placesReady}
}

// Search handles GET /search requests.
func (h *SearchHandler) Search(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("query"))
	latParam := c.QueryParam("lat")
	lngParam := c.QueryParam("lng")

	if query == "" {
		return Error(c, http.StatusBadRequest, "Missing required parameter: query")
	}
	if latParam == "" || lngParam == "" {
		return Error(c, http.StatusBadRequest, "Missing required parameters: lat and lng")
	}

	lat, latErr := strconv.ParseFloat(latParam, 64)
	lng, lngErr := strconv.ParseFloat(lngParam, 64)
	radius := places.DefaultRadiusMeters
	var radiusErr error
	if radiusParam := c.QueryParam("radius"); radiusParam != "" {
		radius, radiusErr = strconv.Atoi(radiusParam)
	}
	if latErr != nil || lngErr != nil || radiusErr != nil || radius < 1 {
		return Error(c, http.StatusBadRequest, "lat, lng, and radius must be numbers")
	}

	if !h.placesReady {
		return Error(c, http.StatusInternalServerError, "Places API key not configured on server")
	}

	params := dto.SearchParams{
		Query:   query,
		Lat:     lat,
		Lng:     lng,
		Radius:  radius,
		ShowAll: strings.EqualFold(c.QueryParam("all"), "true"),
	}

	resp, err := h.service.Search(c.Request().Context(), params)
	if err != nil {
		return ProviderError(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}
