package places

import "io"

// rawPlace mirrors one result entry from the nearby-search payload.
type rawPlace struct {
	Name             string    `json:"name"`
	Vicinity         string    `json:"vicinity"`
	Rating           *float64  `json:"rating"`
	UserRatingsTotal int       `json:"user_ratings_total"`
	PriceLevel       *int      `json:"price_level"`
	Types            []string  `json:"types"`
	OpeningHours     *Hours `json:"opening_hours"`
	Geometry         struct {
		Location struct {
			Lat *float64 `json:"lat"`
			Lng *float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
	Photos  []rawPhoto `json:"photos"`
	PlaceID string     `json:"place_id"`
}

// Hours carries the provider's open-now signal; nil means the provider did
// not report hours.
type Hours struct {
	OpenNow *bool `json:"open_now"`
}

type rawPhoto struct {
	PhotoReference string `json:"photo_reference"`
}

// Details is the extended record returned for a single place.
type Details struct {
	Name             string      `json:"name"`
	FormattedAddress string      `json:"formatted_address,omitempty"`
	FormattedPhone   string      `json:"formatted_phone_number,omitempty"`
	Website          string      `json:"website,omitempty"`
	OpeningHours     *Hours   `json:"opening_hours,omitempty"`
	Rating           *float64    `json:"rating,omitempty"`
	UserRatingsTotal int         `json:"user_ratings_total,omitempty"`
	PriceLevel       *int        `json:"price_level,omitempty"`
	Reviews          []RawReview `json:"reviews,omitempty"`
	URL              string      `json:"url,omitempty"`
	Description      *string     `json:"description"`
	PhotoURL         *string     `json:"photo_url"`
}

// RawReview is a single user review as returned by the provider.
type RawReview struct {
	AuthorName string  `json:"author_name"`
	Rating     float64 `json:"rating"`
	Text       string  `json:"text"`
	Time       int64   `json:"time"`
}

// Photo is a streamed provider image. The caller owns Body and must close it.
type Photo struct {
	Body        io.ReadCloser
	ContentType string
	StatusCode  int
}
