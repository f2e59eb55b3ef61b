package web

import (
	"fmt"
	"html"
	"html/template"
	"net/url"
	"regexp"
	"strings"

	"wander/internal/models/response_models"
)

var boldRe = regexp.MustCompile(`\*\*(.+?)\*\*`)

// RichText escapes a text field and converts markdown-style **bold** markers
// into emphasized spans.
func RichText(text string) template.HTML {
	escaped := html.EscapeString(text)
	return template.HTML(boldRe.ReplaceAllString(escaped, "<strong>$1</strong>"))
}

// ActivityHTML renders one activity line. When the activity names an
// attraction with a wiki link, the exact attraction-name substring becomes a
// hyperlink; if the substring is absent the text renders plain.
func ActivityHTML(act response_models.Activity) template.HTML {
	if act.Wiki == "" || act.AttractionName == "" {
		return RichText(act.Text)
	}

	idx := strings.Index(act.Text, act.AttractionName)
	if idx < 0 {
		return RichText(act.Text)
	}

	before := RichText(act.Text[:idx])
	after := RichText(act.Text[idx+len(act.AttractionName):])
	link := fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener">%s</a>`,
		html.EscapeString(act.Wiki), html.EscapeString(act.AttractionName))
	return before + template.HTML(link) + after
}

// HotelBookingURL builds a prefilled search deep link for the known hotel
// sites; unrecognized sites get the backend-provided link unchanged.
func HotelBookingURL(hotel response_models.HotelLink, destination, checkin, checkout string) string {
	dest := url.QueryEscape(destination)
	switch hotel.Name {
	case "Booking.com":
		return fmt.Sprintf("https://www.booking.com/searchresults.html?ss=%s&checkin=%s&checkout=%s", dest, checkin, checkout)
	case "Hotels.com":
		return fmt.Sprintf("https://www.hotels.com/Hotel-Search?q-destination=%s&q-check-in=%s&q-check-out=%s", dest, checkin, checkout)
	case "Expedia":
		return fmt.Sprintf("https://www.expedia.com/Hotel-Search?destination=%s&startDate=%s&endDate=%s", dest, checkin, checkout)
	default:
		return hotel.Link
	}
}

// FlightBookingURL builds a prefilled flight search deep link per site
// convention. Kayak and Skyscanner route on airport codes, so they only get
// deep links when both endpoints look like codes.
func FlightBookingURL(flight response_models.FlightLink, date string) string {
	origin := strings.TrimSpace(flight.Origin)
	dest := strings.TrimSpace(flight.Destination)

	switch flight.Airline {
	case "Google Flights":
		q := url.QueryEscape(fmt.Sprintf("Flights to %s from %s", dest, origin))
		return "https://www.google.com/travel/flights?q=" + q
	case "Kayak":
		if IsAirportCode(origin) && IsAirportCode(dest) {
			return fmt.Sprintf("https://www.kayak.com/flights/%s-%s/%s",
				strings.ToUpper(origin), strings.ToUpper(dest), date)
		}
		return flight.Link
	case "Skyscanner":
		if IsAirportCode(origin) && IsAirportCode(dest) {
			compact := strings.ReplaceAll(date, "-", "")
			return fmt.Sprintf("https://www.skyscanner.com/transport/flights/%s/%s/%s/",
				strings.ToLower(origin), strings.ToLower(dest), compact)
		}
		return flight.Link
	default:
		return flight.Link
	}
}

// Marker is one map pin, serialized into the results page for the map.
type Marker struct {
	Name string  `json:"name"`
	Type string  `json:"type"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Wiki string  `json:"wiki,omitempty"`
}

// ReconcileMarkers maps the current attraction list to the marker set,
// dropping duplicates by name. It is a pure function of its input: applying
// it again to new data replaces the old markers rather than stacking pins.
func ReconcileMarkers(attractions []response_models.MapAttraction) []Marker {
	seen := make(map[string]bool, len(attractions))
	markers := make([]Marker, 0, len(attractions))
	for _, a := range attractions {
		key := strings.ToLower(strings.TrimSpace(a.Name))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		markers = append(markers, Marker{
			Name: a.Name,
			Type: a.Type,
			Lat:  a.Location.Lat,
			Lng:  a.Location.Lng,
			Wiki: a.Wiki,
		})
	}
	return markers
}
