package request_models

import "encoding/json"

type ChatRequest struct {
	Message     string      `json:"message" binding:"required"`
	CurrentTrip TripContext `json:"currentTrip"`
}

// TripContext carries the originating request's structured fields plus the
// trip sections the assistant may be asked to modify. Itinerary and budget
// stay as raw JSON; the chat prompt only ever embeds truncated excerpts.
type TripContext struct {
	Country   string          `json:"country"`
	Days      int             `json:"days"`
	Locations string          `json:"locations,omitempty"`
	Itinerary json.RawMessage `json:"itinerary,omitempty"`
	Budget    json.RawMessage `json:"budget,omitempty"`
}
