// Package nominatim wraps the OpenStreetMap Nominatim search and reverse
// geocoding endpoints. It is consumed both by the map agent (geocoding
// itinerary attractions) and the web layer (validating user-entered places).
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://nominatim.openstreetmap.org"

// Nominatim's usage policy requires an identifying User-Agent.
const userAgent = "wander-travel-planner/1.0"

type Place struct {
	Lat       string `json:"lat"`
	Lon       string `json:"lon"`
	Type      string `json:"type"`
	Class     string `json:"class"`
	PlaceRank int    `json:"place_rank"`
	Name      string `json:"display_name"`
}

type ReverseAddress struct {
	City    string `json:"city"`
	Town    string `json:"town"`
	Village string `json:"village"`
	County  string `json:"county"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Search(ctx context.Context, query string, limit int) ([]Place, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(limit))
	params.Set("addressdetails", "1")

	var places []Place
	if err := c.get(ctx, "/search", params, &places); err != nil {
		return nil, err
	}
	return places, nil
}

// Reverse resolves coordinates to an address; used by the planner's
// "use my location" origin prefill.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (*ReverseAddress, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("format", "json")

	var resp struct {
		Address ReverseAddress `json:"address"`
	}
	if err := c.get(ctx, "/reverse", params, &resp); err != nil {
		return nil, err
	}
	return &resp.Address, nil
}

// Geocode returns the first match's coordinates, or ok=false when the place
// is unknown.
func (c *Client) Geocode(ctx context.Context, query string) (lat, lon float64, ok bool, err error) {
	places, err := c.Search(ctx, query, 1)
	if err != nil {
		return 0, 0, false, err
	}
	if len(places) == 0 {
		return 0, 0, false, nil
	}
	lat, err = strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return 0, 0, false, fmt.Errorf("bad latitude %q", places[0].Lat)
	}
	lon, err = strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return 0, 0, false, fmt.Errorf("bad longitude %q", places[0].Lon)
	}
	return lat, lon, true, nil
}

// Destination-level place types; bars, restaurants and single buildings are
// not valid trip destinations.
var validDestinationTypes = []string{
	"city", "town", "village", "municipality",
	"state", "province", "region",
	"country", "administrative",
	"county", "district",
	"aerodrome", "airport",
}

// IsValidDestination reports whether any search result for the query looks
// like a city-or-larger place. Cities typically carry place_rank <= 16.
func (c *Client) IsValidDestination(ctx context.Context, query string) (bool, error) {
	places, err := c.Search(ctx, query, 5)
	if err != nil {
		return false, err
	}
	for _, p := range places {
		if PlaceLooksLikeDestination(p) {
			return true, nil
		}
	}
	return false, nil
}

func PlaceLooksLikeDestination(p Place) bool {
	typ := strings.ToLower(p.Type)
	class := strings.ToLower(p.Class)
	for _, valid := range validDestinationTypes {
		if strings.Contains(typ, valid) || strings.Contains(class, valid) {
			return true
		}
	}
	return p.PlaceRank > 0 && p.PlaceRank <= 16
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("nominatim: status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
