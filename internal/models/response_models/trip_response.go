package response_models

import (
	"encoding/json"
	"regexp"
	"sort"
	"strconv"
)

// TripResponse is the wire shape of POST /plan-trip. Every field is
// independently optional; itinerary and budget are tagged unions that may
// carry an unparsed raw string instead of structured data.
type TripResponse struct {
	Itinerary ItinerarySection `json:"itinerary"`
	Budget    BudgetSection    `json:"budget"`
	Bookings  *Bookings        `json:"bookings"`
	MapData   []MapAttraction  `json:"mapData"`
	Weather   *WeatherForecast `json:"weather,omitempty"`
	News      []NewsArticle    `json:"news,omitempty"`
}

// ItinerarySection is either a map of "day<N>" keys to day plans or, when
// the model's response failed JSON parsing, the raw text. Exactly one of
// Days and Raw is set.
type ItinerarySection struct {
	Days map[string]DayItinerary
	Raw  string
}

func (s ItinerarySection) IsRaw() bool   { return s.Raw != "" }
func (s ItinerarySection) IsEmpty() bool { return s.Raw == "" && len(s.Days) == 0 }

var dayKeyRe = regexp.MustCompile(`^day(\d+)$`)

// SortedDayKeys orders day keys by their trailing number, so "day2" sorts
// before "day10". Keys without a numeric suffix sort last, lexicographically.
func (s ItinerarySection) SortedDayKeys() []string {
	keys := make([]string, 0, len(s.Days))
	for k := range s.Days {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ni, iok := dayNumber(keys[i])
		nj, jok := dayNumber(keys[j])
		if iok && jok {
			return ni < nj
		}
		if iok != jok {
			return iok
		}
		return keys[i] < keys[j]
	})
	return keys
}

func dayNumber(key string) (int, bool) {
	m := dayKeyRe.FindStringSubmatch(key)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// DayNumber extracts the numeric part of a "day<N>" key, or 0.
func DayNumber(key string) int {
	n, _ := dayNumber(key)
	return n
}

func (s ItinerarySection) MarshalJSON() ([]byte, error) {
	if s.Raw != "" {
		return json.Marshal(map[string]string{"raw": s.Raw})
	}
	if s.Days == nil {
		return []byte("null"), nil
	}
	return json.Marshal(s.Days)
}

func (s *ItinerarySection) UnmarshalJSON(data []byte) error {
	*s = ItinerarySection{}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		// A bare string is treated the same as an explicit raw payload.
		var raw string
		if err := json.Unmarshal(data, &raw); err == nil {
			s.Raw = raw
		}
		return nil
	}
	if probe == nil {
		return nil
	}

	if rawMsg, ok := probe["raw"]; ok {
		var raw string
		if err := json.Unmarshal(rawMsg, &raw); err == nil {
			s.Raw = raw
			return nil
		}
	}

	days := make(map[string]DayItinerary, len(probe))
	for key, msg := range probe {
		var day DayItinerary
		if err := json.Unmarshal(msg, &day); err != nil {
			// A malformed inner day degrades to omission, never to a
			// decoding failure for the whole itinerary.
			continue
		}
		days[key] = day
	}
	s.Days = days
	return nil
}

type DayItinerary struct {
	Location           string          `json:"location,omitempty"`
	LocationWiki       string          `json:"location_wiki,omitempty"`
	Transportation     *Transportation `json:"transportation,omitempty"`
	Morning            ActivityList    `json:"morning,omitempty"`
	Afternoon          ActivityList    `json:"afternoon,omitempty"`
	Evening            ActivityList    `json:"evening,omitempty"`
	FoodRecommendation string          `json:"food_recommendation,omitempty"`
	CulturalHighlight  string          `json:"cultural_highlight,omitempty"`
}

type Transportation struct {
	Method     string `json:"method"`
	Duration   string `json:"duration"`
	CostLocal  string `json:"cost_local,omitempty"`
	CostOrigin string `json:"cost_origin,omitempty"`
	TravelNote string `json:"travel_note,omitempty"`
}

// Activity is one itinerary entry. Wiki and AttractionName are filled by the
// wikipedia enrichment pass; renderers link the AttractionName substring of
// Text when both are present.
type Activity struct {
	Text           string `json:"text"`
	Wiki           string `json:"wiki,omitempty"`
	AttractionName string `json:"attractionName,omitempty"`
}

// ActivityList tolerates the three shapes a time-of-day slot can arrive in:
// a single string, a list of strings, or a list of activity records.
type ActivityList struct {
	// Text is set when the slot was a bare string.
	Text  string
	Items []Activity
}

func (l ActivityList) IsZero() bool { return l.Text == "" && len(l.Items) == 0 }

func (l ActivityList) MarshalJSON() ([]byte, error) {
	if l.Text != "" {
		return json.Marshal(l.Text)
	}
	if l.Items == nil {
		return []byte("null"), nil
	}
	return json.Marshal(l.Items)
}

func (l *ActivityList) UnmarshalJSON(data []byte) error {
	*l = ActivityList{}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		l.Text = text
		return nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		// Unknown inner shape: drop the slot rather than fail the day.
		return nil
	}
	for _, entry := range entries {
		var s string
		if err := json.Unmarshal(entry, &s); err == nil {
			l.Items = append(l.Items, Activity{Text: s})
			continue
		}
		var a Activity
		if err := json.Unmarshal(entry, &a); err == nil && a.Text != "" {
			l.Items = append(l.Items, a)
		}
	}
	return nil
}

// BudgetSection mirrors ItinerarySection's raw-or-structured union.
type BudgetSection struct {
	Estimate *BudgetEstimate
	Raw      string
}

func (s BudgetSection) IsRaw() bool   { return s.Raw != "" }
func (s BudgetSection) IsEmpty() bool { return s.Raw == "" && s.Estimate == nil }

type BudgetEstimate struct {
	City                    string    `json:"city,omitempty"`
	Days                    int       `json:"days,omitempty"`
	DestinationCurrencyCode string    `json:"destination_currency_code,omitempty"`
	DestinationSymbol       string    `json:"destination_symbol,omitempty"`
	OriginCurrencyCode      string    `json:"origin_currency_code,omitempty"`
	OriginSymbol            string    `json:"origin_symbol,omitempty"`
	ExchangeRate            float64   `json:"exchange_rate,omitempty"`
	Currency                string    `json:"currency,omitempty"`
	HotelPerNight           *CostBand `json:"hotel_per_night,omitempty"`
	FoodPerDay              *CostBand `json:"food_per_day,omitempty"`
	TransportTotal          *CostBand `json:"transport_total,omitempty"`
	ActivitiesTotal         *CostBand `json:"activities_total,omitempty"`
	TotalBudget             *CostBand `json:"total_budget,omitempty"`
	Disclaimer              string    `json:"disclaimer,omitempty"`
}

// CurrencySymbol defaults to "$" when the estimate does not name one.
func (e *BudgetEstimate) CurrencySymbol() string {
	if e == nil || e.Currency == "" {
		return "$"
	}
	return e.Currency
}

type CostBand struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Note string  `json:"note,omitempty"`
}

func (s BudgetSection) MarshalJSON() ([]byte, error) {
	if s.Raw != "" {
		return json.Marshal(map[string]string{"raw": s.Raw})
	}
	if s.Estimate == nil {
		return []byte("null"), nil
	}
	return json.Marshal(s.Estimate)
}

func (s *BudgetSection) UnmarshalJSON(data []byte) error {
	*s = BudgetSection{}

	var probe struct {
		Raw *string `json:"raw"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		// A bare string is treated the same as an explicit raw payload.
		var raw string
		if err := json.Unmarshal(data, &raw); err == nil {
			s.Raw = raw
		}
		return nil
	}
	if probe.Raw != nil {
		s.Raw = *probe.Raw
		return nil
	}

	var est BudgetEstimate
	if err := json.Unmarshal(data, &est); err != nil {
		return nil
	}
	if est == (BudgetEstimate{}) {
		return nil
	}
	s.Estimate = &est
	return nil
}

type Bookings struct {
	Hotels  []HotelLink  `json:"hotels"`
	Flights []FlightLink `json:"flights"`
}

type HotelLink struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link"`
	SearchQuery string `json:"search_query,omitempty"`
}

type FlightLink struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Price       float64 `json:"price"`
	Airline     string  `json:"airline"`
	Link        string  `json:"link"`
	SearchQuery string  `json:"search_query,omitempty"`
}

type MapAttraction struct {
	Name     string      `json:"name"`
	Type     string      `json:"type"`
	Location MapLocation `json:"location"`
	Wiki     string      `json:"wiki,omitempty"`
}

type MapLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
