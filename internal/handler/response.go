package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hearthlocal/local-finder/api/internal/places"
)

// ErrorBody is the shape of every error response.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Error sends a plain error response.
func Error(c echo.Context, status int, message string) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, ErrorBody{Error: message})
}

// ProviderError maps a places-provider failure onto the HTTP surface: both
// unreachable providers and provider-side error statuses surface as 502,
// with the provider diagnostic passed through when one exists.
func ProviderError(c echo.Context, err error) error {
	var apiErr *places.APIError
	if errors.As(err, &apiErr) {
		return c.JSON(http.StatusBadGateway, ErrorBody{
			Error:   "Places API error: " + apiErr.Status,
			Details: apiErr.Message,
		})
	}

	var unavailable *places.UnavailableError
	if errors.As(err, &unavailable) {
		return Error(c, http.StatusBadGateway, unavailable.Error())
	}

	return Error(c, http.StatusBadGateway, "places provider request failed")
}
