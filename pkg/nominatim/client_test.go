package nominatim

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchSendsUserAgent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
		assert.Equal(t, "Tokyo", r.URL.Query().Get("q"))
		w.Write([]byte(`[{"lat": "35.68", "lon": "139.69", "type": "city", "class": "place", "place_rank": 16, "display_name": "Tokyo, Japan"}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	places, err := client.Search(context.Background(), "Tokyo", 5)
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, "Tokyo, Japan", places[0].Name)
}

func TestGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat": "35.68", "lon": "139.69", "type": "city", "class": "place", "place_rank": 16}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	lat, lon, ok, err := client.Geocode(context.Background(), "Tokyo")
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 35.68, lat, 0.001)
	assert.InDelta(t, 139.69, lon, 0.001)
}

func TestGeocodeNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	_, _, ok, err := client.Geocode(context.Background(), "Nowhereville")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReverse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "35.68", r.URL.Query().Get("lat"))
		assert.Equal(t, "139.69", r.URL.Query().Get("lon"))
		w.Write([]byte(`{"address": {"city": "Tokyo", "county": "Tokyo Metropolis"}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	addr, err := client.Reverse(context.Background(), 35.68, 139.69)
	require.NoError(t, err)
	assert.Equal(t, "Tokyo", addr.City)
	assert.Equal(t, "Tokyo Metropolis", addr.County)
}

func TestPlaceLooksLikeDestination(t *testing.T) {
	assert.True(t, PlaceLooksLikeDestination(Place{Type: "city", Class: "place", PlaceRank: 16}))
	assert.True(t, PlaceLooksLikeDestination(Place{Type: "administrative", Class: "boundary", PlaceRank: 8}))
	assert.True(t, PlaceLooksLikeDestination(Place{Type: "aerodrome", Class: "aeroway", PlaceRank: 30}))
	assert.False(t, PlaceLooksLikeDestination(Place{Type: "restaurant", Class: "amenity", PlaceRank: 30}))
	assert.False(t, PlaceLooksLikeDestination(Place{Type: "house", Class: "building", PlaceRank: 30}))
}

func TestIsValidDestination(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"type": "restaurant", "class": "amenity", "place_rank": 30},
			{"type": "city", "class": "place", "place_rank": 16}
		]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	ok, err := client.IsValidDestination(context.Background(), "Paris")
	require.NoError(t, err)
	assert.True(t, ok)
}
