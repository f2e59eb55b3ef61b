// Package agents holds the per-concern workers that the plan service fans
// out to: itinerary and budget generation through the LLM, booking link
// cards, weather and news providers, wikipedia enrichment, and attraction
// geocoding for the map.
package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
	"wander/pkg/llm"
)

type ItineraryAgent struct {
	llm llm.Client
}

func NewItineraryAgent(client llm.Client) *ItineraryAgent {
	return &ItineraryAgent{llm: client}
}

// Generate produces the day-keyed itinerary. Output that fails JSON parsing
// is returned as a raw section, not an error; only a failed model call is an
// error.
func (a *ItineraryAgent) Generate(ctx context.Context, req request_models.PlanRequest) (response_models.ItinerarySection, error) {
	prompt := buildItineraryPrompt(req)

	text, err := a.llm.GenerateJSON(ctx, prompt)
	if err != nil {
		return response_models.ItinerarySection{}, err
	}

	var days map[string]response_models.DayItinerary
	if err := json.Unmarshal([]byte(text), &days); err != nil || len(days) == 0 {
		return response_models.ItinerarySection{Raw: text}, nil
	}
	return response_models.ItinerarySection{Days: days}, nil
}

func buildItineraryPrompt(req request_models.PlanRequest) string {
	locations := splitLocations(req.Locations)

	var b strings.Builder

	switch {
	case len(locations) == 0:
		maxCities := min(4, req.Days/2+1)
		fmt.Fprintf(&b, "Create a %d-day travel itinerary for %s.\n\n", req.Days, req.Country)
		fmt.Fprintf(&b, "The traveler wants to explore %s but hasn't specified exact cities.\n", req.Country)
		fmt.Fprintf(&b, "Select 1-%d cities or regions that best showcase the country,\n", maxCities)
		b.WriteString("plan a logical geographic route minimizing travel time, and group\nconsecutive days in the same city together.\n")
	case len(locations) == 1:
		fmt.Fprintf(&b, "Create a %d-day travel itinerary for %s, %s.\n\n", req.Days, locations[0], req.Country)
		b.WriteString("Focus ONLY on the requested city, not nearby areas, and include its\nmajor tourist attractions and landmarks.\n")
	default:
		fmt.Fprintf(&b, "Create a %d-day travel itinerary visiting these locations in %s:\n%s\n\n",
			req.Days, req.Country, strings.Join(locations, ", "))
		fmt.Fprintf(&b, "Allocate the %d days proportionally, visit the locations in a logical\ngeographic order, and cover all of them.\n", req.Days)
	}

	b.WriteString(`
For each day provide:
- location: the city/area for this day
- morning, afternoon, evening: each an ARRAY of 2-3 specific activities,
  every activity a clear actionable bullet such as "Visit the Eiffel Tower"
- food_recommendation: a specific local dish or restaurant recommendation
- cultural_highlight: one interesting cultural fact or must-see cultural site
- transportation: ONLY when moving to a new city, an object with
  method, duration, cost_local, cost_origin, travel_note.
`)
	if req.Origin != "" {
		fmt.Fprintf(&b, "Show transportation costs in the local currency AND converted for a traveler from %s.\n", req.Origin)
	}

	b.WriteString(`
Return ONLY valid JSON keyed 'day1', 'day2', etc. Example:
{
  "day1": {
    "location": "Tokyo",
    "morning": ["Visit Tokyo Skytree", "Explore Senso-ji Temple"],
    "afternoon": ["See Shibuya Crossing", "Visit Meiji Shrine"],
    "evening": ["Dinner in Shinjuku"],
    "food_recommendation": "Try authentic ramen at Ichiran",
    "cultural_highlight": "Experience a traditional tea ceremony"
  }
}
`)

	if details := strings.TrimSpace(req.AdditionalDetails); details != "" {
		b.WriteString("\nIMPORTANT - USER PREFERENCES AND EXISTING PLANS:\n")
		b.WriteString("The traveler provided details that MUST be incorporated:\n")
		b.WriteString(details)
		b.WriteString("\nInclude pre-booked tickets or reservations on the right days, plan\naround existing commitments, and avoid conflicting activities during\npre-booked time slots.\n")
	}

	return b.String()
}

func splitLocations(locations string) []string {
	if strings.TrimSpace(locations) == "" {
		return nil
	}
	parts := strings.Split(locations, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
