package response_models

type WeatherForecast struct {
	Location  string        `json:"location"`
	Latitude  float64       `json:"latitude"`
	Longitude float64       `json:"longitude"`
	Timezone  string        `json:"timezone"`
	Forecast  []DayForecast `json:"forecast"`
}

type DayForecast struct {
	Date                     string           `json:"date"`
	MaxTempC                 float64          `json:"maxtemp_c"`
	MinTempC                 float64          `json:"mintemp_c"`
	MaxTempF                 float64          `json:"maxtemp_f"`
	MinTempF                 float64          `json:"mintemp_f"`
	PrecipitationSum         float64          `json:"precipitation_sum"`
	PrecipitationProbability int              `json:"precipitation_probability"`
	WindSpeedMax             float64          `json:"wind_speed_max"`
	WeatherCode              int              `json:"weather_code"`
	Condition                WeatherCondition `json:"condition"`
}

type WeatherCondition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}
