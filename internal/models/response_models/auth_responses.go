package response_models

type UserResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	Username       string `json:"username"`
	ProfilePicture string `json:"profile_picture,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
	TripCount      int    `json:"trip_count"`
}

type AuthResponse struct {
	Message     string       `json:"message"`
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

// SavedTripResponse is the list/detail shape for saved trips. Data is only
// populated on detail fetches.
type SavedTripResponse struct {
	ID         string         `json:"id"`
	TripName   string         `json:"trip_name"`
	Country    string         `json:"country"`
	Locations  string         `json:"locations,omitempty"`
	Days       int            `json:"days"`
	Origin     string         `json:"origin,omitempty"`
	StartDate  string         `json:"start_date,omitempty"`
	TripPace   string         `json:"trip_pace,omitempty"`
	Notes      string         `json:"notes,omitempty"`
	IsFavorite bool           `json:"is_favorite"`
	CreatedAt  string         `json:"created_at"`
	UpdatedAt  string         `json:"updated_at"`
	Data       *SavedTripData `json:"data,omitempty"`
}

type SavedTripData struct {
	Itinerary ItinerarySection `json:"itinerary"`
	Budget    BudgetSection    `json:"budget"`
	Bookings  *Bookings        `json:"bookings"`
	MapData   []MapAttraction  `json:"mapData"`
	Weather   *WeatherForecast `json:"weather"`
	News      []NewsArticle    `json:"news"`
}
