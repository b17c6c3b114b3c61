package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hearthlocal/local-finder/api/internal/places"
)

const defaultPhotoWidth = 400

// PhotoFetcher streams provider photos.
type PhotoFetcher interface {
	FetchPhoto(ctx context.Context, ref string, width int) (*places.Photo, error)
}

// PhotoHandler proxies place photos so the provider credential stays
// server-side.
type PhotoHandler struct {
	fetcher PhotoFetcher
}

// NewPhotoHandler creates a photo proxy handler.
func NewPhotoHandler(fetcher PhotoFetcher) *PhotoHandler {
	return &PhotoHandler{fetcher: fetcher}
}

// Proxy handles GET /photo requests.
func (h *PhotoHandler) Proxy(c echo.Context) error {
	ref := c.QueryParam("ref")
	if ref == "" {
		return Error(c, http.StatusBadRequest, "Missing parameter: ref")
	}

	width := defaultPhotoWidth
	if widthParam := c.QueryParam("width"); widthParam != "" {
		if parsed, err := strconv.Atoi(widthParam); err == nil && parsed > 0 {
			width = parsed
		}
	}

	photo, err := h.fetcher.FetchPhoto(c.Request().Context(), ref, width)
	if err != nil {
		return ProviderError(c, err)
	}
	defer photo.Body.Close()

	// The provider's status travels with the bytes.
	return c.Stream(photo.StatusCode, photo.ContentType, photo.Body)
}
