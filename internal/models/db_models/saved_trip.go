package db_models

import "github.com/google/uuid"

// SavedTrip stores a trip snapshot. The six section payloads are kept as the
// JSON the planner produced, so raw-fallback sections round-trip unchanged.
type SavedTrip struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	TripName  string `gorm:"not null"`
	Country   string `gorm:"not null"`
	Locations string
	Days      int `gorm:"not null"`
	Origin    string
	StartDate string
	TripPace  string

	Itinerary []byte `gorm:"type:jsonb"`
	Budget    []byte `gorm:"type:jsonb"`
	Bookings  []byte `gorm:"type:jsonb"`
	MapData   []byte `gorm:"type:jsonb"`
	Weather   []byte `gorm:"type:jsonb"`
	News      []byte `gorm:"type:jsonb"`

	Notes      string
	IsFavorite bool `gorm:"default:false"`
}
