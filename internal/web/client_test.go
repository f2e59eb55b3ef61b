package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wander/internal/models/request_models"
)

func TestAPIClientPlanTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/plan-trip", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req request_models.PlanRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Japan", req.Country)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"itinerary": {"day1": {"location": "Tokyo"}}, "budget": null, "bookings": null}`))
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL)
	resp, err := client.PlanTrip(context.Background(), request_models.PlanRequest{Country: "Japan", Days: 3})
	require.NoError(t, err)
	assert.Equal(t, "Tokyo", resp.Itinerary.Days["day1"].Location)
}

func TestAPIClientExtractsErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "Country is required"}`))
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL)
	_, err := client.PlanTrip(context.Background(), request_models.PlanRequest{})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Country is required", apiErr.Message)
	assert.Equal(t, "Country is required", UpstreamMessage(err))
}

func TestAPIClientGenericMessageOnOpaqueFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL)
	_, err := client.PlanTrip(context.Background(), request_models.PlanRequest{Country: "Japan"})
	require.Error(t, err)
	assert.Equal(t, "Something went wrong while planning your trip. Please try again.", UpstreamMessage(err))
}

func TestAPIClientSendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL)
	trips, err := client.ListTrips(context.Background(), "token-123")
	require.NoError(t, err)
	assert.Empty(t, trips)
}

func TestAPIClientDeleteTripNoBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/trips/abc", r.URL.Path)
		w.Write([]byte(`{"message": "Trip deleted"}`))
	}))
	defer srv.Close()

	client := NewAPIClient(srv.URL)
	assert.NoError(t, client.DeleteTrip(context.Background(), "tok", "abc"))
}
