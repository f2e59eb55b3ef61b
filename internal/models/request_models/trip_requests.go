package request_models

import "encoding/json"

// SaveTripRequest carries the full trip snapshot at save time. The section
// payloads are stored verbatim, raw-fallback tags included.
type SaveTripRequest struct {
	TripName  string          `json:"trip_name" binding:"required"`
	Country   string          `json:"country" binding:"required"`
	Days      int             `json:"days" binding:"required"`
	Locations string          `json:"locations,omitempty"`
	Origin    string          `json:"origin,omitempty"`
	StartDate string          `json:"start_date,omitempty"`
	TripPace  string          `json:"trip_pace,omitempty"`
	Notes     string          `json:"notes,omitempty"`
	Itinerary json.RawMessage `json:"itinerary,omitempty"`
	Budget    json.RawMessage `json:"budget,omitempty"`
	Bookings  json.RawMessage `json:"bookings,omitempty"`
	MapData   json.RawMessage `json:"mapData,omitempty"`
	Weather   json.RawMessage `json:"weather,omitempty"`
	News      json.RawMessage `json:"news,omitempty"`
}

type UpdateTripRequest struct {
	TripName   *string `json:"trip_name,omitempty"`
	Notes      *string `json:"notes,omitempty"`
	IsFavorite *bool   `json:"is_favorite,omitempty"`
}
