package external

// GeocodingSearchResponse represents the response from the Open-Meteo geocoding search API
type GeocodingSearchResponse struct {
	Results          []GeocodingResult `json:"results"`
	GenerationTimeMs float64           `json:"generationtime_ms"`
}

// GeocodingResult represents a single place match. Pointer fields are nil when absent.
type GeocodingResult struct {
	ID          int64    `json:"id"`
	Name        *string  `json:"name"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Country     *string  `json:"country"`
	CountryCode string   `json:"country_code"`
	Admin1      *string  `json:"admin1"`
	Timezone    string   `json:"timezone"`
}

// ForecastResponse represents the response from the Open-Meteo forecast API
type ForecastResponse struct {
	Latitude     float64            `json:"latitude"`
	Longitude    float64            `json:"longitude"`
	Timezone     string             `json:"timezone"`
	CurrentUnits map[string]string  `json:"current_units"`
	Current      *CurrentConditions `json:"current"`
}

// CurrentConditions holds the requested "current" variables. Pointer fields are nil when absent.
type CurrentConditions struct {
	Time                string   `json:"time,omitempty"`
	Interval            int      `json:"interval,omitempty"`
	Temperature2m       *float64 `json:"temperature_2m,omitempty"`
	RelativeHumidity2m  *float64 `json:"relative_humidity_2m,omitempty"`
	ApparentTemperature *float64 `json:"apparent_temperature,omitempty"`
	Precipitation       *float64 `json:"precipitation,omitempty"`
	WeatherCode         *int     `json:"weather_code,omitempty"`
	WindSpeed10m        *float64 `json:"wind_speed_10m,omitempty"`
	PressureMsl         *float64 `json:"pressure_msl,omitempty"`
}

// IsEmpty reports whether the current block carried no keys at all
func (c *CurrentConditions) IsEmpty() bool {
	return c == nil || (c.Time == "" &&
		c.Interval == 0 &&
		c.Temperature2m == nil &&
		c.RelativeHumidity2m == nil &&
		c.ApparentTemperature == nil &&
		c.Precipitation == nil &&
		c.WeatherCode == nil &&
		c.WindSpeed10m == nil &&
		c.PressureMsl == nil)
}

// APIErrorResponse represents error responses from the Open-Meteo APIs
type APIErrorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}
