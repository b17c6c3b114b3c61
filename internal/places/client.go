package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hearthlocal/local-finder/api/internal/entity"
	"github.com/hearthlocal/local-finder/api/internal/service/taxonomy"
)

const (
	// MaxRadiusMeters is the provider's documented search radius cap.
	MaxRadiusMeters = 50000
	// DefaultRadiusMeters is applied when the caller omits a radius.
	DefaultRadiusMeters = 5000

	defaultBaseURL = "https://maps.googleapis.com/maps/api/place"
	defaultTimeout = 10 * time.Second

	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"

	detailsFields = "name,formatted_address,formatted_phone_number," +
		"website,opening_hours,rating,user_ratings_total," +
		"price_level,reviews,url,editorial_summary,photos"
)

// Client talks to a Google-Places-compatible provider. The API key stays
// server-side; photo URLs handed to clients point back at this service's
// own photo proxy.
type Client struct {
	client        *http.Client
	baseURL       string
	apiKey        string
	publicBaseURL string
}

// NewClient builds a places client. A nil http.Client gets a bounded-timeout
// default; an empty base URL falls back to the Google Places endpoint.
func NewClient(client *http.Client, baseURL, apiKey, publicBaseURL string) *Client {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		client:        client,
		baseURL:       strings.TrimRight(baseURL, "/"),
		apiKey:        apiKey,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Configured reports whether a provider credential is available.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// NearbySearch runs one nearby-search call and normalizes each result into a
// Business. ZERO_RESULTS is a valid empty outcome, not an error. Records
// missing a place_id or name are dropped.
func (c *Client) NearbySearch(ctx context.Context, keyword string, lat, lng float64, radius int) ([]entity.Business, error) {
	radius = ClampRadius(radius)

	params := url.Values{}
	params.Set("keyword", keyword)
	params.Set("location", fmt.Sprintf("%g,%g", lat, lng))
	params.Set("radius", strconv.Itoa(radius))
	params.Set("type", "establishment")
	params.Set("key", c.apiKey)

	var payload struct {
		Status       string     `json:"status"`
		ErrorMessage string     `json:"error_message"`
		Results      []rawPlace `json:"results"`
	}
	if err := c.getJSON(ctx, "nearbysearch", "/nearbysearch/json", params, &payload); err != nil {
		return nil, err
	}

	if payload.Status != statusOK && payload.Status != statusZeroResults {
		return nil, &APIError{Status: payload.Status, Message: payload.ErrorMessage}
	}

	businesses := make([]entity.Business, 0, len(payload.Results))
	for _, place := range payload.Results {
		if place.PlaceID == "" || place.Name == "" {
			continue
		}
		businesses = append(businesses, c.normalize(place))
	}
	return businesses, nil
}

// Details fetches the extended record for a single place and lifts the
// editorial summary and first photo into dedicated fields.
func (c *Client) Details(ctx context.Context, placeID string) (*Details, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", detailsFields)
	params.Set("key", c.apiKey)

	var payload struct {
		Status       string `json:"status"`
		ErrorMessage string `json:"error_message"`
		Result       struct {
			Details
			EditorialSummary *struct {
				Overview string `json:"overview"`
			} `json:"editorial_summary"`
			Photos []rawPhoto `json:"photos"`
		} `json:"result"`
	}
	if err := c.getJSON(ctx, "details", "/details/json", params, &payload); err != nil {
		return nil, err
	}

	if payload.Status != statusOK {
		return nil, &APIError{Status: payload.Status, Message: payload.ErrorMessage}
	}

	details := payload.Result.Details
	if payload.Result.EditorialSummary != nil && payload.Result.EditorialSummary.Overview != "" {
		overview := payload.Result.EditorialSummary.Overview
		details.Description = &overview
	}
	if len(payload.Result.Photos) > 0 && payload.Result.Photos[0].PhotoReference != "" {
		details.PhotoURL = c.photoURL(payload.Result.Photos[0].PhotoReference)
	}
	return &details, nil
}

// FetchPhoto streams a provider photo. The provider's HTTP status and
// content type are passed through so the proxy endpoint can relay them.
func (c *Client) FetchPhoto(ctx context.Context, ref string, width int) (*Photo, error) {
	params := url.Values{}
	params.Set("photoreference", ref)
	params.Set("maxwidth", strconv.Itoa(width))
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/photo?"+params.Encode(), nil)
	if err != nil {
		return nil, &UnavailableError{Op: "photo", Err: err}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &UnavailableError{Op: "photo", Err: err}
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return &Photo{Body: resp.Body, ContentType: contentType, StatusCode: resp.StatusCode}, nil
}

// ClampRadius caps the search radius at the provider maximum and substitutes
// the default for non-positive values.
func ClampRadius(radius int) int {
	if radius <= 0 {
		return DefaultRadiusMeters
	}
	if radius > MaxRadiusMeters {
		return MaxRadiusMeters
	}
	return radius
}

func (c *Client) getJSON(ctx context.Context, op, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return &UnavailableError{Op: op, Err: err}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &UnavailableError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &UnavailableError{Op: op, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &UnavailableError{Op: op, Err: fmt.Errorf("could not decode response: %w", err)}
	}
	return nil
}

func (c *Client) normalize(place rawPlace) entity.Business {
	b := entity.Business{
		ID:          place.PlaceID,
		Name:        place.Name,
		Category:    taxonomy.Label(place.Types),
		Rating:      place.Rating,
		ReviewCount: place.UserRatingsTotal,
		PriceLevel:  place.PriceLevel,
		PlaceID:     place.PlaceID,
		Lat:         place.Geometry.Location.Lat,
		Lng:         place.Geometry.Location.Lng,
		MapsURL:     "https://www.google.com/maps/place/?q=place_id:" + place.PlaceID,
	}
	if place.Vicinity != "" {
		b.Address = &place.Vicinity
	}
	if place.OpeningHours != nil {
		b.OpenNow = place.OpeningHours.OpenNow
	}
	if len(place.Photos) > 0 && place.Photos[0].PhotoReference != "" {
		ref := place.Photos[0].PhotoReference
		b.PhotoRef = &ref
		b.PhotoURL = c.photoURL(ref)
	}
	return b
}

func (c *Client) photoURL(ref string) *string {
	u := c.publicBaseURL + "/photo?ref=" + url.QueryEscape(ref) + "&width=600"
	return &u
}
