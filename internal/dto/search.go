package dto

import "github.com/hearthlocal/local-finder/api/internal/entity"

// SearchParams is a validated search request.
type SearchParams struct {
	Query   string
	Lat     float64
	Lng     float64
	Radius  int
	ShowAll bool
}

// Location echoes the caller-supplied coordinate.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// SearchResponse is the payload returned by the search endpoint.
type SearchResponse struct {
	Query      string            `json:"query"`
	AIKeyword  string            `json:"ai_keyword"`
	Location   Location          `json:"location"`
	RadiusM    int               `json:"radius_m"`
	TotalFound int               `json:"total_found"`
	Businesses []entity.Business `json:"businesses"`
}
