package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"wander/internal/models/request_models"
	"wander/internal/models/response_models"
)

const (
	openMeteoGeocodeURL  = "https://geocoding-api.open-meteo.com/v1/search"
	openMeteoForecastURL = "https://api.open-meteo.com/v1/forecast"

	// Open-Meteo caps its daily forecast horizon.
	maxForecastDays = 16
)

// WMO weather interpretation codes.
var weatherCodeText = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	66: "Light freezing rain",
	67: "Heavy freezing rain",
	71: "Slight snow",
	73: "Moderate snow",
	75: "Heavy snow",
	77: "Snow grains",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
	85: "Slight snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with slight hail",
	99: "Thunderstorm with heavy hail",
}

var weatherCodeIcon = map[int]string{
	0: "☀️", 1: "🌤️", 2: "⛅", 3: "☁️",
	45: "🌫️", 48: "🌫️",
	51: "🌦️", 53: "🌦️", 55: "🌧️",
	61: "🌧️", 63: "🌧️", 65: "🌧️", 66: "🌧️", 67: "🌧️",
	71: "🌨️", 73: "🌨️", 75: "❄️", 77: "❄️",
	80: "🌦️", 81: "🌧️", 82: "⛈️",
	85: "🌨️", 86: "❄️",
	95: "⛈️", 96: "⛈️", 99: "⛈️",
}

type WeatherAgent struct {
	http        *http.Client
	geocodeURL  string
	forecastURL string
}

func NewWeatherAgent() *WeatherAgent {
	return &WeatherAgent{
		http:        &http.Client{Timeout: 10 * time.Second},
		geocodeURL:  openMeteoGeocodeURL,
		forecastURL: openMeteoForecastURL,
	}
}

// Generate fetches a daily forecast for the trip's primary destination. Any
// failure returns nil so the trip renders without a weather card.
func (a *WeatherAgent) Generate(ctx context.Context, req request_models.PlanRequest) *response_models.WeatherForecast {
	location := primaryDestination(req)
	if location == "" {
		return nil
	}

	lat, lon, name, ok := a.geocode(ctx, location)
	if !ok {
		return nil
	}

	days := req.Days
	if days > maxForecastDays {
		days = maxForecastDays
	}
	if days < 1 {
		days = 1
	}

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("daily", strings.Join([]string{
		"weather_code",
		"temperature_2m_max",
		"temperature_2m_min",
		"precipitation_sum",
		"precipitation_probability_max",
		"wind_speed_10m_max",
	}, ","))
	params.Set("timezone", "auto")
	params.Set("forecast_days", strconv.Itoa(days))

	var resp struct {
		Timezone string `json:"timezone"`
		Daily    struct {
			Time             []string  `json:"time"`
			WeatherCode      []int     `json:"weather_code"`
			TempMax          []float64 `json:"temperature_2m_max"`
			TempMin          []float64 `json:"temperature_2m_min"`
			PrecipSum        []float64 `json:"precipitation_sum"`
			PrecipProbMax    []int     `json:"precipitation_probability_max"`
			WindSpeed10mMax  []float64 `json:"wind_speed_10m_max"`
		} `json:"daily"`
	}
	if err := a.getJSON(ctx, a.forecastURL+"?"+params.Encode(), &resp); err != nil {
		return nil
	}

	forecast := make([]response_models.DayForecast, 0, len(resp.Daily.Time))
	for i, date := range resp.Daily.Time {
		day := response_models.DayForecast{Date: date}
		if i < len(resp.Daily.TempMax) {
			day.MaxTempC = resp.Daily.TempMax[i]
			day.MaxTempF = celsiusToFahrenheit(day.MaxTempC)
		}
		if i < len(resp.Daily.TempMin) {
			day.MinTempC = resp.Daily.TempMin[i]
			day.MinTempF = celsiusToFahrenheit(day.MinTempC)
		}
		if i < len(resp.Daily.PrecipSum) {
			day.PrecipitationSum = resp.Daily.PrecipSum[i]
		}
		if i < len(resp.Daily.PrecipProbMax) {
			day.PrecipitationProbability = resp.Daily.PrecipProbMax[i]
		}
		if i < len(resp.Daily.WindSpeed10mMax) {
			day.WindSpeedMax = resp.Daily.WindSpeed10mMax[i]
		}
		if i < len(resp.Daily.WeatherCode) {
			day.WeatherCode = resp.Daily.WeatherCode[i]
			day.Condition = describeWeatherCode(day.WeatherCode)
		}
		forecast = append(forecast, day)
	}
	if len(forecast) == 0 {
		return nil
	}

	if name == "" {
		name = location
	}
	return &response_models.WeatherForecast{
		Location:  name,
		Latitude:  lat,
		Longitude: lon,
		Timezone:  resp.Timezone,
		Forecast:  forecast,
	}
}

func (a *WeatherAgent) geocode(ctx context.Context, location string) (lat, lon float64, name string, ok bool) {
	params := url.Values{}
	params.Set("name", location)
	params.Set("count", "1")

	var resp struct {
		Results []struct {
			Name      string  `json:"name"`
			Latitude  float64 `json:"latitude"`
			Longitude float64 `json:"longitude"`
			Country   string  `json:"country"`
		} `json:"results"`
	}
	if err := a.getJSON(ctx, a.geocodeURL+"?"+params.Encode(), &resp); err != nil {
		return 0, 0, "", false
	}
	if len(resp.Results) == 0 {
		return 0, 0, "", false
	}
	r := resp.Results[0]
	name = r.Name
	if r.Country != "" && r.Country != r.Name {
		name = fmt.Sprintf("%s, %s", r.Name, r.Country)
	}
	return r.Latitude, r.Longitude, name, true
}

func (a *WeatherAgent) getJSON(ctx context.Context, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := a.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("open-meteo: status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func describeWeatherCode(code int) response_models.WeatherCondition {
	text, ok := weatherCodeText[code]
	if !ok {
		text = "Unknown"
	}
	icon, ok := weatherCodeIcon[code]
	if !ok {
		icon = "🌡️"
	}
	return response_models.WeatherCondition{Text: text, Icon: icon}
}

func celsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}
