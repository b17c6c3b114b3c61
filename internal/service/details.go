package service

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"

	"github.com/hearthlocal/local-finder/api/internal/dto"
	"github.com/hearthlocal/local-finder/api/internal/places"
)

const (
	trackingPrefix     = "utm_"
	defaultPhoneRegion = "US"
)

// PlaceDetailer fetches the extended record for a single place.
type PlaceDetailer interface {
	Details(ctx context.Context, placeID string) (*places.Details, error)
}

// DetailsService fetches and enriches a single place record.
type DetailsService struct {
	detailer PlaceDetailer
	region   string
}

// NewDetailsService builds a details service. The region is used when
// parsing nationally formatted phone numbers; empty falls back to US.
func NewDetailsService(detailer PlaceDetailer, region string) *DetailsService {
	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		region = defaultPhoneRegion
	}
	return &DetailsService{detailer: detailer, region: region}
}

// Get returns the provider record with the phone number normalized to E.164
// and the website URL sanitized. Enrichment is best-effort: unusable phone
// or website values are left as the provider sent them.
func (s *DetailsService) Get(ctx context.Context, placeID string) (*dto.DetailsResponse, error) {
	details, err := s.detailer.Details(ctx, placeID)
	if err != nil {
		return nil, err
	}

	resp := &dto.DetailsResponse{Details: *details}
	resp.PhoneE164 = normalizePhone(details.FormattedPhone, s.region)
	if sanitized := sanitizeWebsite(details.Website); sanitized != "" {
		resp.Website = sanitized
	}
	return resp, nil
}

func normalizePhone(raw, region string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	number, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return ""
	}
	if !phonenumbers.IsPossibleNumber(number) || !phonenumbers.IsValidNumber(number) {
		return ""
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}

// sanitizeWebsite forces an https scheme, strips tracking parameters, and
// ASCII-normalizes internationalized hostnames. Returns "" when the value is
// not a usable URL.
func sanitizeWebsite(raw string) string {
	u, err := parseWebsite(raw)
	if err != nil {
		return ""
	}

	host, err := idna.Lookup.ToASCII(u.Hostname())
	if err != nil || host == "" {
		return ""
	}
	if port := u.Port(); port != "" {
		u.Host = host + ":" + port
	} else {
		u.Host = host
	}

	stripTracking(u)
	return u.String()
}

func parseWebsite(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("empty url")
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return nil, errors.New("invalid url")
	}
	u.Scheme = "https"
	return u, nil
}

func stripTracking(u *url.URL) {
	query := u.Query()
	changed := false
	for key := range query {
		if strings.HasPrefix(strings.ToLower(key), trackingPrefix) {
			query.Del(key)
			changed = true
		}
	}
	if changed {
		u.RawQuery = query.Encode()
	}
}
