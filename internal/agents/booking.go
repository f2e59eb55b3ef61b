package agents

import (
	"strings"

	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
)

type BookingAgent struct{}

func NewBookingAgent() *BookingAgent {
	return &BookingAgent{}
}

// Generate returns static hotel and flight search cards. The web layer turns
// these into deep links with the trip's destination and dates.
func (a *BookingAgent) Generate(req request_models.PlanRequest) *response_models.Bookings {
	destination := primaryDestination(req)

	origin := req.Origin
	if origin == "" {
		origin = "Your City"
	}

	return &response_models.Bookings{
		Hotels: []response_models.HotelLink{
			{
				Name:        "Booking.com",
				Description: "Compare prices from major hotel chains and independent properties",
				Link:        "https://www.booking.com/",
				SearchQuery: "hotels",
			},
			{
				Name:        "Hotels.com",
				Description: "Earn rewards and get special member pricing",
				Link:        "https://www.hotels.com/",
				SearchQuery: "hotels",
			},
			{
				Name:        "Expedia",
				Description: "Bundle hotels with flights for additional savings",
				Link:        "https://www.expedia.com/",
				SearchQuery: "hotels",
			},
		},
		Flights: []response_models.FlightLink{
			{Origin: origin, Destination: destination, Airline: "Google Flights", Link: "https://www.google.com/travel/flights", SearchQuery: "flights"},
			{Origin: origin, Destination: destination, Airline: "Kayak", Link: "https://www.kayak.com/flights", SearchQuery: "flights"},
			{Origin: origin, Destination: destination, Airline: "Skyscanner", Link: "https://www.skyscanner.com/flights", SearchQuery: "flights"},
		},
	}
}

// primaryDestination is the first listed location, else the country.
func primaryDestination(req request_models.PlanRequest) string {
	if locs := splitLocations(req.Locations); len(locs) > 0 {
		return locs[0]
	}
	return strings.TrimSpace(req.Country)
}
