package agents

import (
	"context"
	"strings"
	"sync"
	"time"

	"wander/internal/models/response_models"
	"wander/pkg/nominatim"
)

// More markers than this clutter the map and hammer the geocoder.
const maxMapAttractions = 8

// Nominatim asks for spaced-out requests, so the fan-out staggers starts
// instead of firing all lookups at once.
const geocodeStagger = 150 * time.Millisecond

type MapAgent struct {
	geo *nominatim.Client
}

func NewMapAgent(geo *nominatim.Client) *MapAgent {
	return &MapAgent{geo: geo}
}

type mapCandidate struct {
	name  string
	typ   string
	query string
	wiki  string
}

// Generate geocodes the itinerary's cities and named attractions into map
// markers. Candidates that fail to geocode are dropped; input order is kept.
func (a *MapAgent) Generate(ctx context.Context, country string, itinerary response_models.ItinerarySection) []response_models.MapAttraction {
	candidates := collectMapCandidates(country, itinerary)
	if len(candidates) == 0 {
		return nil
	}
	if len(candidates) > maxMapAttractions {
		candidates = candidates[:maxMapAttractions]
	}

	results := make([]*response_models.MapAttraction, len(candidates))
	var wg sync.WaitGroup
	for i, cand := range candidates {
		wg.Add(1)
		go func(i int, cand mapCandidate) {
			defer wg.Done()
			select {
			case <-time.After(time.Duration(i) * geocodeStagger):
			case <-ctx.Done():
				return
			}
			lat, lon, ok, err := a.geo.Geocode(ctx, cand.query)
			if err != nil || !ok {
				return
			}
			results[i] = &response_models.MapAttraction{
				Name:     cand.name,
				Type:     cand.typ,
				Location: response_models.MapLocation{Lat: lat, Lng: lon},
				Wiki:     cand.wiki,
			}
		}(i, cand)
	}
	wg.Wait()

	attractions := make([]response_models.MapAttraction, 0, len(results))
	for _, r := range results {
		if r != nil {
			attractions = append(attractions, *r)
		}
	}
	if len(attractions) == 0 {
		return nil
	}
	return attractions
}

// collectMapCandidates walks days in order, taking each new city first and
// then its named attractions, deduplicated case-insensitively.
func collectMapCandidates(country string, itinerary response_models.ItinerarySection) []mapCandidate {
	if itinerary.IsRaw() {
		return nil
	}

	seen := make(map[string]bool)
	var out []mapCandidate

	add := func(c mapCandidate) {
		key := strings.ToLower(c.name)
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, c)
	}

	for _, key := range itinerary.SortedDayKeys() {
		day := itinerary.Days[key]
		if loc := strings.TrimSpace(day.Location); loc != "" {
			add(mapCandidate{
				name:  loc,
				typ:   "city",
				query: joinPlace(loc, country),
				wiki:  day.LocationWiki,
			})
		}
		for _, list := range []response_models.ActivityList{day.Morning, day.Afternoon, day.Evening} {
			for _, act := range list.Items {
				name := strings.TrimSpace(act.AttractionName)
				if name == "" {
					continue
				}
				add(mapCandidate{
					name:  name,
					typ:   "attraction",
					query: joinPlace(name, joinPlace(day.Location, country)),
					wiki:  act.Wiki,
				})
			}
		}
	}
	return out
}

func joinPlace(parts ...string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ", ")
}
