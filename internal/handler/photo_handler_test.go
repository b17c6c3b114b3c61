package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hearthlocal/local-finder/api/internal/places"
)

type stubPhotoFetcher struct {
	photo    *places.Photo
	err      error
	gotRef   string
	gotWidth int
}

func (s *stubPhotoFetcher) FetchPhoto(ctx context.Context, ref string, width int) (*places.Photo, error) {
	s.gotRef = ref
	s.gotWidth = width
	return s.photo, s.err
}

func doPhoto(t *testing.T, handler *PhotoHandler, target string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := handler.Proxy(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	return rec
}

func TestPhotoHandler_MissingRef(t *testing.T) {
	fetcher := &stubPhotoFetcher{}
	handler := NewPhotoHandler(fetcher)

	rec := doPhoto(t, handler, "/photo")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPhotoHandler_Stream(t *testing.T) {
	fetcher := &stubPhotoFetcher{photo: &places.Photo{
		Body:        io.NopCloser(strings.NewReader("img-bytes")),
		ContentType: "image/png",
		StatusCode:  http.StatusOK,
	}}
	handler := NewPhotoHandler(fetcher)

	rec := doPhoto(t, handler, "/photo?ref=abc&width=800")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("Content-Type") != "image/png" {
		t.Fatalf("expected provider content type, got %s", rec.Header().Get("Content-Type"))
	}
	if rec.Body.String() != "img-bytes" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if fetcher.gotRef != "abc" || fetcher.gotWidth != 800 {
		t.Fatalf("unexpected fetch args: ref=%s width=%d", fetcher.gotRef, fetcher.gotWidth)
	}
}

func TestPhotoHandler_DefaultWidth(t *testing.T) {
	fetcher := &stubPhotoFetcher{photo: &places.Photo{
		Body:        io.NopCloser(strings.NewReader("img")),
		ContentType: "image/jpeg",
		StatusCode:  http.StatusOK,
	}}
	handler := NewPhotoHandler(fetcher)

	doPhoto(t, handler, "/photo?ref=abc&width=bogus")
	if fetcher.gotWidth != defaultPhotoWidth {
		t.Fatalf("expected default width %d, got %d", defaultPhotoWidth, fetcher.gotWidth)
	}
}

func TestPhotoHandler_ProviderStatusPassthrough(t *testing.T) {
	fetcher := &stubPhotoFetcher{photo: &places.Photo{
		Body:        io.NopCloser(strings.NewReader("denied")),
		ContentType: "text/plain",
		StatusCode:  http.StatusForbidden,
	}}
	handler := NewPhotoHandler(fetcher)

	rec := doPhoto(t, handler, "/photo?ref=abc")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected provider status passed through, got %d", rec.Code)
	}
}

func TestPhotoHandler_TransportFailure(t *testing.T) {
	fetcher := &stubPhotoFetcher{err: &places.UnavailableError{Op: "photo", Err: errors.New("network down")}}
	handler := NewPhotoHandler(fetcher)

	rec := doPhoto(t, handler, "/photo?ref=abc")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}
