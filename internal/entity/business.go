package entity

// Business represents a normalized place result returned to clients.
type Business struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Address     *string  `json:"address,omitempty"`
	Category    string   `json:"category"`
	Rating      *float64 `json:"rating,omitempty"`
	ReviewCount int      `json:"review_count"`
	PriceLevel  *int     `json:"price_level,omitempty"`
	OpenNow     *bool    `json:"open_now,omitempty"`
	PlaceID     string   `json:"place_id"`
	Lat         *float64 `json:"lat,omitempty"`
	Lng         *float64 `json:"lng,omitempty"`
	PhotoRef    *string  `json:"photo_ref,omitempty"`
	PhotoURL    *string  `json:"photo_url,omitempty"`
	MapsURL     string   `json:"maps_url"`
	AIReason    string   `json:"ai_reason,omitempty"`
}
