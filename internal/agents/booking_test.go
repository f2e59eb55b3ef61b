package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wander/internal/models/request_models"
)

func TestBookingAgentCards(t *testing.T) {
	agent := NewBookingAgent()

	bookings := agent.Generate(request_models.PlanRequest{Country: "Japan", Origin: "London"})
	require.NotNil(t, bookings)
	require.Len(t, bookings.Hotels, 3)
	require.Len(t, bookings.Flights, 3)

	assert.Equal(t, "Booking.com", bookings.Hotels[0].Name)
	assert.Equal(t, "London", bookings.Flights[0].Origin)
	assert.Equal(t, "Japan", bookings.Flights[0].Destination)
}

func TestBookingAgentDefaultsOrigin(t *testing.T) {
	agent := NewBookingAgent()

	bookings := agent.Generate(request_models.PlanRequest{Country: "Japan"})
	assert.Equal(t, "Your City", bookings.Flights[0].Origin)
}

func TestPrimaryDestination(t *testing.T) {
	assert.Equal(t, "Tokyo",
		primaryDestination(request_models.PlanRequest{Country: "Japan", Locations: "Tokyo, Kyoto"}))
	assert.Equal(t, "Japan",
		primaryDestination(request_models.PlanRequest{Country: "Japan"}))
}
