// Package web is the server-rendered front end: it turns form input into
// planning requests, talks to the JSON API, keeps per-browser trip sessions,
// and renders the result panels.
package web

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"wander/internal/models/request_models"
	"wander/pkg/nominatim"
)

const (
	minDays     = 1
	maxDays     = 30
	dateLayout  = "2006-01-02"
	defaultPace = "balanced"
)

// TripForm is the raw planner form submission, before validation.
type TripForm struct {
	Country           string
	Locations         string
	Origin            string
	Days              string
	StartDate         string
	ReturnDate        string
	Pace              string
	AdditionalDetails string
}

var paceNotes = map[string]string{
	"relaxed":   "Keep the pace relaxed: fewer activities per day, with downtime built in.",
	"active":    "Keep the pace active: fill each day with sights and experiences.",
	"adventure": "Favor adventurous, outdoor and off-the-beaten-path activities.",
}

var airportCodeRe = regexp.MustCompile(`^[A-Za-z]{3,4}$`)

// IsAirportCode reports whether the origin looks like an IATA/ICAO code.
// Codes skip place-name validation; nothing is looked up locally.
func IsAirportCode(origin string) bool {
	return airportCodeRe.MatchString(strings.TrimSpace(origin))
}

// TripDays computes the inclusive day count between two dates. Falls back to
// the manual entry, clamped to [1,30] with blank or zero treated as 1.
func TripDays(startDate, returnDate, manual string) int {
	if startDate != "" && returnDate != "" {
		start, err1 := time.Parse(dateLayout, startDate)
		end, err2 := time.Parse(dateLayout, returnDate)
		if err1 == nil && err2 == nil && !end.Before(start) {
			return clampDays(int(end.Sub(start).Hours()/24) + 1)
		}
	}
	n, err := strconv.Atoi(strings.TrimSpace(manual))
	if err != nil {
		return minDays
	}
	return clampDays(n)
}

func clampDays(n int) int {
	if n < minDays {
		return minDays
	}
	if n > maxDays {
		return maxDays
	}
	return n
}

// EndDate returns startDate + (days-1), the checkout date bookings use.
func EndDate(startDate string, days int) string {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return ""
	}
	if days < 1 {
		days = 1
	}
	return start.AddDate(0, 0, days-1).Format(dateLayout)
}

// Planner validates trip forms and assembles planning requests.
type Planner struct {
	geo *nominatim.Client
}

func NewPlanner(geo *nominatim.Client) *Planner {
	return &Planner{geo: geo}
}

// ValidationError carries a per-field message for inline display.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Message }

// BuildRequest validates the form and produces the outbound planning request.
// The pace choice is folded into the free-text details unless it is the
// default; a geocoder outage never blocks submission.
func (p *Planner) BuildRequest(ctx context.Context, form TripForm) (request_models.PlanRequest, error) {
	var req request_models.PlanRequest

	country := strings.TrimSpace(form.Country)
	if country == "" {
		return req, &ValidationError{Field: "country", Message: "Please enter a destination country"}
	}
	if strings.TrimSpace(form.StartDate) == "" {
		return req, &ValidationError{Field: "start_date", Message: "Please choose a start date"}
	}
	if form.ReturnDate != "" && form.ReturnDate < form.StartDate {
		return req, &ValidationError{Field: "return_date", Message: "Return date must be after the start date"}
	}

	origin := strings.TrimSpace(form.Origin)
	if p.geo != nil && origin != "" && !IsAirportCode(origin) {
		ok, err := p.geo.IsValidDestination(ctx, origin)
		if err == nil && !ok {
			return req, &ValidationError{Field: "origin", Message: "We couldn't find that place; check the spelling or use an airport code"}
		}
	}

	details := strings.TrimSpace(form.AdditionalDetails)
	pace := form.Pace
	if pace == "" {
		pace = defaultPace
	}
	if note, ok := paceNotes[pace]; ok && pace != defaultPace {
		if details != "" {
			details += "\n"
		}
		details += note
	}

	req = request_models.PlanRequest{
		Country:           country,
		Locations:         strings.TrimSpace(form.Locations),
		Days:              TripDays(form.StartDate, form.ReturnDate, form.Days),
		Origin:            origin,
		AdditionalDetails: details,
	}
	return req, nil
}

// OriginFromCoords reverse-geocodes browser coordinates into a city name for
// the origin field. ok is false when no city-level name is available.
func (p *Planner) OriginFromCoords(ctx context.Context, lat, lon float64) (string, bool, error) {
	addr, err := p.geo.Reverse(ctx, lat, lon)
	if err != nil {
		return "", false, err
	}
	for _, name := range []string{addr.City, addr.Town, addr.Village, addr.County} {
		if name != "" {
			return name, true, nil
		}
	}
	return "", false, nil
}

// UpstreamMessage extracts a user-presentable message from a planning
// failure, preferring what the backend said over a generic fallback.
func UpstreamMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return "Something went wrong while planning your trip. Please try again."
}
