package web

import (
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wander/internal/models/response_models"
)

func TestRichTextBold(t *testing.T) {
	assert.Equal(t, template.HTML("Try the <strong>night market</strong> early"),
		RichText("Try the **night market** early"))
}

func TestRichTextEscapesHTML(t *testing.T) {
	assert.Equal(t, template.HTML("&lt;script&gt;"), RichText("<script>"))
}

func TestActivityHTMLLinksExactSubstring(t *testing.T) {
	out := ActivityHTML(response_models.Activity{
		Text:           "Visit the Tower of London today",
		AttractionName: "Tower of London",
		Wiki:           "https://en.wikipedia.org/wiki/Tower_of_London",
	})
	assert.Equal(t, template.HTML(
		`Visit the <a href="https://en.wikipedia.org/wiki/Tower_of_London" target="_blank" rel="noopener">Tower of London</a> today`), out)
}

func TestActivityHTMLSubstringMissingFallsBack(t *testing.T) {
	out := ActivityHTML(response_models.Activity{
		Text:           "Spend the morning at the castle",
		AttractionName: "Edinburgh Castle",
		Wiki:           "https://en.wikipedia.org/wiki/Edinburgh_Castle",
	})
	assert.Equal(t, template.HTML("Spend the morning at the castle"), out)
}

func TestActivityHTMLNoWiki(t *testing.T) {
	out := ActivityHTML(response_models.Activity{Text: "Grab **breakfast** nearby"})
	assert.Equal(t, template.HTML("Grab <strong>breakfast</strong> nearby"), out)
}

func TestHotelBookingURLs(t *testing.T) {
	url := HotelBookingURL(response_models.HotelLink{Name: "Booking.com"}, "Paris", "2025-06-01", "2025-06-05")
	assert.Contains(t, url, "ss=Paris&checkin=2025-06-01&checkout=2025-06-05")

	url = HotelBookingURL(response_models.HotelLink{Name: "Hotels.com"}, "Paris", "2025-06-01", "2025-06-05")
	assert.Contains(t, url, "q-destination=Paris&q-check-in=2025-06-01&q-check-out=2025-06-05")

	url = HotelBookingURL(response_models.HotelLink{Name: "Expedia"}, "New York", "2025-06-01", "2025-06-05")
	assert.Contains(t, url, "destination=New+York&startDate=2025-06-01&endDate=2025-06-05")
}

func TestHotelBookingURLUnknownSiteFallsBack(t *testing.T) {
	url := HotelBookingURL(response_models.HotelLink{
		Name: "Agoda", Link: "https://www.agoda.com/",
	}, "Paris", "2025-06-01", "2025-06-05")
	assert.Equal(t, "https://www.agoda.com/", url)
}

func TestFlightBookingURLs(t *testing.T) {
	google := FlightBookingURL(response_models.FlightLink{
		Airline: "Google Flights", Origin: "San Francisco", Destination: "Tokyo",
	}, "2025-06-01")
	assert.Contains(t, google, "q=Flights+to+Tokyo+from+San+Francisco")

	kayak := FlightBookingURL(response_models.FlightLink{
		Airline: "Kayak", Origin: "sfo", Destination: "NRT",
	}, "2025-06-01")
	assert.Equal(t, "https://www.kayak.com/flights/SFO-NRT/2025-06-01", kayak)

	sky := FlightBookingURL(response_models.FlightLink{
		Airline: "Skyscanner", Origin: "SFO", Destination: "NRT",
	}, "2025-06-01")
	assert.Equal(t, "https://www.skyscanner.com/transport/flights/sfo/nrt/20250601/", sky)
}

func TestFlightBookingURLNonCodeFallsBack(t *testing.T) {
	out := FlightBookingURL(response_models.FlightLink{
		Airline: "Kayak", Origin: "San Francisco", Destination: "Tokyo",
		Link: "https://www.kayak.com/flights",
	}, "2025-06-01")
	assert.Equal(t, "https://www.kayak.com/flights", out)
}

func TestReconcileMarkersDedupes(t *testing.T) {
	attractions := []response_models.MapAttraction{
		{Name: "Tokyo", Type: "city", Location: response_models.MapLocation{Lat: 35.7, Lng: 139.7}},
		{Name: "tokyo", Type: "city", Location: response_models.MapLocation{Lat: 35.7, Lng: 139.7}},
		{Name: "Meiji Shrine", Type: "attraction", Location: response_models.MapLocation{Lat: 35.68, Lng: 139.7}},
	}

	markers := ReconcileMarkers(attractions)
	require.Len(t, markers, 2)
	assert.Equal(t, "Tokyo", markers[0].Name)
	assert.Equal(t, "Meiji Shrine", markers[1].Name)
}

func TestReconcileMarkersIdempotent(t *testing.T) {
	attractions := []response_models.MapAttraction{
		{Name: "Kyoto", Location: response_models.MapLocation{Lat: 35.0, Lng: 135.8}},
	}
	first := ReconcileMarkers(attractions)
	second := ReconcileMarkers(attractions)
	assert.Equal(t, first, second)
}

func TestReconcileMarkersEmpty(t *testing.T) {
	assert.Empty(t, ReconcileMarkers(nil))
}
