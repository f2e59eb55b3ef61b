package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wander/pkg/nominatim"
)

func TestTripDaysInclusiveCount(t *testing.T) {
	assert.Equal(t, 5, TripDays("2025-06-01", "2025-06-05", ""))
	assert.Equal(t, 1, TripDays("2025-06-01", "2025-06-01", ""))
	assert.Equal(t, 8, TripDays("2025-06-25", "2025-07-02", ""))
}

func TestTripDaysClampsLongRange(t *testing.T) {
	assert.Equal(t, 30, TripDays("2025-06-01", "2025-08-01", ""))
}

func TestTripDaysManualEntry(t *testing.T) {
	assert.Equal(t, 7, TripDays("", "", "7"))
	assert.Equal(t, 30, TripDays("", "", "99"))
	assert.Equal(t, 1, TripDays("", "", "0"))
	assert.Equal(t, 1, TripDays("", "", "-3"))
	assert.Equal(t, 1, TripDays("", "", ""))
	assert.Equal(t, 1, TripDays("", "", "abc"))
}

func TestTripDaysBadDatesFallBackToManual(t *testing.T) {
	assert.Equal(t, 4, TripDays("2025-06-05", "2025-06-01", "4"))
	assert.Equal(t, 4, TripDays("not-a-date", "2025-06-01", "4"))
}

func TestIsAirportCode(t *testing.T) {
	assert.True(t, IsAirportCode("SFO"))
	assert.True(t, IsAirportCode("sfo"))
	assert.True(t, IsAirportCode("EGLL"))
	assert.False(t, IsAirportCode("SF"))
	assert.False(t, IsAirportCode("London"))
	assert.False(t, IsAirportCode("SFO1"))
	assert.False(t, IsAirportCode(""))
}

func TestEndDate(t *testing.T) {
	assert.Equal(t, "2025-06-05", EndDate("2025-06-01", 5))
	assert.Equal(t, "2025-06-01", EndDate("2025-06-01", 1))
	assert.Equal(t, "", EndDate("garbage", 5))
}

func TestBuildRequestValidation(t *testing.T) {
	p := NewPlanner(nil)

	_, err := p.BuildRequest(context.Background(), TripForm{StartDate: "2025-06-01"})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "country", ve.Field)

	_, err = p.BuildRequest(context.Background(), TripForm{Country: "Japan"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "start_date", ve.Field)

	_, err = p.BuildRequest(context.Background(), TripForm{
		Country: "Japan", StartDate: "2025-06-05", ReturnDate: "2025-06-01",
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "return_date", ve.Field)
}

func TestBuildRequestPaceAnnotation(t *testing.T) {
	p := NewPlanner(nil)

	req, err := p.BuildRequest(context.Background(), TripForm{
		Country: "Japan", StartDate: "2025-06-01", ReturnDate: "2025-06-03",
		Pace: "relaxed", AdditionalDetails: "vegetarian food please",
	})
	require.NoError(t, err)
	assert.Contains(t, req.AdditionalDetails, "vegetarian food please")
	assert.Contains(t, req.AdditionalDetails, "relaxed")
	assert.Equal(t, 3, req.Days)
}

func TestBuildRequestBalancedPaceNotAnnotated(t *testing.T) {
	p := NewPlanner(nil)

	req, err := p.BuildRequest(context.Background(), TripForm{
		Country: "Japan", StartDate: "2025-06-01", Days: "2", Pace: "balanced",
	})
	require.NoError(t, err)
	assert.Empty(t, req.AdditionalDetails)
	assert.Equal(t, 2, req.Days)
}

func TestOriginFromCoords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"address": {"town": "Sausalito", "county": "Marin County"}}`))
	}))
	defer srv.Close()

	p := NewPlanner(nominatim.NewClient(srv.URL))
	origin, ok, err := p.OriginFromCoords(context.Background(), 37.86, -122.49)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Sausalito", origin)
}

func TestOriginFromCoordsNoCityLevelName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"address": {}}`))
	}))
	defer srv.Close()

	p := NewPlanner(nominatim.NewClient(srv.URL))
	_, ok, err := p.OriginFromCoords(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.False(t, ok)
}
