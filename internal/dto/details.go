package dto

import "github.com/hearthlocal/local-finder/api/internal/places"

// DetailsResponse extends the provider details record with server-side
// enrichment.
type DetailsResponse struct {
	places.Details
	PhoneE164 string `json:"phone_e164,omitempty"`
}
