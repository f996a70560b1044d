package weather

import (
	"testing"
	"time"

	"weather-relay/internal/domain/entity"
	"weather-relay/internal/domain/model/external"
)

func ptr[T any](v T) *T {
	return &v
}

var london = entity.Location{
	Latitude:  51.50853,
	Longitude: -0.12574,
	City:      "London",
	Country:   "United Kingdom",
	Admin1:    "England",
}

func TestDescribeWeatherCode(t *testing.T) {
	tests := map[int]string{
		0:  "Clear sky",
		3:  "Overcast",
		45: "Foggy",
		77: "Snow grains",
		95: "Thunderstorm",
		99: "Thunderstorm with heavy hail",
		42: "Unknown",
		-1: "Unknown",
		4:  "Unknown",
	}
	for code, want := range tests {
		if got := DescribeWeatherCode(code); got != want {
			t.Errorf("DescribeWeatherCode(%d) = '%s', want '%s'", code, got, want)
		}
	}

	if len(weatherDescriptions) != 24 {
		t.Errorf("Expected 24 weather codes, got %d", len(weatherDescriptions))
	}
}

func TestShapeReport(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 30, 45, 123456000, time.Local)

	t.Run("should round and relabel every field", func(t *testing.T) {
		current := external.CurrentConditions{
			Temperature2m:       ptr(21.264),
			RelativeHumidity2m:  ptr(65.0),
			ApparentTemperature: ptr(20.04),
			Precipitation:       ptr(0.25),
			WeatherCode:         ptr(95),
			WindSpeed10m:        ptr(11.36),
			PressureMsl:         ptr(1013.2),
		}

		report := ShapeReport(london, current, now)

		expected := entity.WeatherReport{
			City:          "London",
			Country:       "United Kingdom",
			Admin1:        "England",
			Temperature:   21.3,
			FeelsLike:     20.0,
			Humidity:      65,
			Pressure:      1013,
			WindSpeed:     11.4,
			Precipitation: 0.25,
			Description:   "Thunderstorm",
			WeatherCode:   95,
			Latitude:      51.50853,
			Longitude:     -0.12574,
			Timestamp:     "2024-05-01T12:30:45.123456",
		}
		if report != expected {
			t.Errorf("Unexpected report\n got: %+v\nwant: %+v", report, expected)
		}
	})

	t.Run("should round exact halves to the even neighbour", func(t *testing.T) {
		current := external.CurrentConditions{
			Temperature2m:       ptr(0.25),
			ApparentTemperature: ptr(-1.75),
			WindSpeed10m:        ptr(10.25),
			PressureMsl:         ptr(1012.5),
		}

		report := ShapeReport(london, current, now)
		if report.Pressure != 1012 {
			t.Errorf("Expected pressure 1012, got %d", report.Pressure)
		}
		if report.Temperature != 0.2 {
			t.Errorf("Expected temperature 0.2, got %v", report.Temperature)
		}
		if report.FeelsLike != -1.8 {
			t.Errorf("Expected feels_like -1.8, got %v", report.FeelsLike)
		}
		if report.WindSpeed != 10.2 {
			t.Errorf("Expected wind_speed 10.2, got %v", report.WindSpeed)
		}
	})

	t.Run("should omit the fraction for whole seconds", func(t *testing.T) {
		report := ShapeReport(london, external.CurrentConditions{}, time.Date(2024, 5, 1, 12, 30, 45, 0, time.Local))
		if report.Timestamp != "2024-05-01T12:30:45" {
			t.Errorf("Expected '2024-05-01T12:30:45', got '%s'", report.Timestamp)
		}
	})

	t.Run("should pass humidity and precipitation through unrounded", func(t *testing.T) {
		current := external.CurrentConditions{
			RelativeHumidity2m: ptr(64.57),
			Precipitation:      ptr(0.123),
		}

		report := ShapeReport(london, current, now)
		if report.Humidity != 64.57 {
			t.Errorf("Expected humidity 64.57, got %v", report.Humidity)
		}
		if report.Precipitation != 0.123 {
			t.Errorf("Expected precipitation 0.123, got %v", report.Precipitation)
		}
	})

	t.Run("should default absent fields to zero", func(t *testing.T) {
		report := ShapeReport(london, external.CurrentConditions{Time: "2024-05-01T12:30"}, now)

		if report.Temperature != 0 || report.FeelsLike != 0 || report.Humidity != 0 ||
			report.Pressure != 0 || report.WindSpeed != 0 || report.Precipitation != 0 {
			t.Errorf("Expected zero measurements, got %+v", report)
		}
		if report.WeatherCode != 0 || report.Description != "Clear sky" {
			t.Errorf("Expected code 0 described as 'Clear sky', got %d '%s'", report.WeatherCode, report.Description)
		}
	})

	t.Run("should describe codes outside the table as unknown", func(t *testing.T) {
		report := ShapeReport(london, external.CurrentConditions{WeatherCode: ptr(42)}, now)
		if report.Description != "Unknown" || report.WeatherCode != 42 {
			t.Errorf("Expected code 42 'Unknown', got %d '%s'", report.WeatherCode, report.Description)
		}
	})
}
