package entity

// WeatherReport is the public schema returned by GET /api/weather
type WeatherReport struct {
	City          string  `json:"city"`
	Country       string  `json:"country"`
	Admin1        string  `json:"admin1"`
	Temperature   float64 `json:"temperature"`
	FeelsLike     float64 `json:"feels_like"`
	Humidity      float64 `json:"humidity"`
	Pressure      int     `json:"pressure"`
	WindSpeed     float64 `json:"wind_speed"`
	Precipitation float64 `json:"precipitation"`
	Description   string  `json:"description"`
	WeatherCode   int     `json:"weather_code"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	Timestamp     string  `json:"timestamp"`
}
