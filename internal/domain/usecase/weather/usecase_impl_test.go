package weather

import (
	"context"
	"errors"
	"testing"
	"time"

	"weather-relay/internal/domain/entity"
	"weather-relay/internal/domain/gateway/api"
	"weather-relay/internal/domain/model/external"
)

type fakeGeocodingGateway struct {
	location *entity.Location
	err      error
	calls    []string
}

func (f *fakeGeocodingGateway) SearchLocation(_ context.Context, name string) (*entity.Location, error) {
	f.calls = append(f.calls, name)
	return f.location, f.err
}

type fakeForecastGateway struct {
	current *external.CurrentConditions
	err     error
	calls   [][2]float64
}

func (f *fakeForecastGateway) GetCurrentConditions(_ context.Context, latitude, longitude float64) (*external.CurrentConditions, error) {
	f.calls = append(f.calls, [2]float64{latitude, longitude})
	return f.current, f.err
}

func fixedClock() time.Time {
	return time.Date(2024, 5, 1, 8, 0, 0, 0, time.Local)
}

func TestGetCurrentWeather(t *testing.T) {
	t.Run("should geocode then fetch with the resolved coordinates", func(t *testing.T) {
		geocoding := &fakeGeocodingGateway{location: &london}
		forecast := &fakeForecastGateway{current: &external.CurrentConditions{Temperature2m: ptr(21.264), WeatherCode: ptr(0)}}
		uc := NewWeatherUseCase(geocoding, forecast, fixedClock)

		report, err := uc.GetCurrentWeather(context.Background(), "London")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		if len(geocoding.calls) != 1 || geocoding.calls[0] != "London" {
			t.Errorf("Expected one geocoding call for London, got %v", geocoding.calls)
		}
		if len(forecast.calls) != 1 || forecast.calls[0] != [2]float64{51.50853, -0.12574} {
			t.Errorf("Expected one forecast call with London coordinates, got %v", forecast.calls)
		}
		if report.Temperature != 21.3 || report.Description != "Clear sky" || report.Timestamp != "2024-05-01T08:00:00" {
			t.Errorf("Unexpected report %+v", report)
		}
	})

	t.Run("should reject empty city without calling upstream", func(t *testing.T) {
		geocoding := &fakeGeocodingGateway{}
		forecast := &fakeForecastGateway{}
		uc := NewWeatherUseCase(geocoding, forecast, fixedClock)

		_, err := uc.GetCurrentWeather(context.Background(), "")
		if !errors.Is(err, ErrCityRequired) {
			t.Errorf("Expected ErrCityRequired, got %v", err)
		}
		if len(geocoding.calls) != 0 || len(forecast.calls) != 0 {
			t.Error("Expected no upstream calls")
		}
	})

	t.Run("should not fetch weather when geocoding fails", func(t *testing.T) {
		geocoding := &fakeGeocodingGateway{err: api.ErrLocationNotFound}
		forecast := &fakeForecastGateway{}
		uc := NewWeatherUseCase(geocoding, forecast, fixedClock)

		report, err := uc.GetCurrentWeather(context.Background(), "Nowhere")
		if !errors.Is(err, api.ErrLocationNotFound) {
			t.Errorf("Expected ErrLocationNotFound, got %v", err)
		}
		if report != nil {
			t.Errorf("Expected no partial report, got %+v", report)
		}
		if len(forecast.calls) != 0 {
			t.Error("Expected no forecast call")
		}
	})

	t.Run("should return no partial report when forecast fails", func(t *testing.T) {
		geocoding := &fakeGeocodingGateway{location: &london}
		forecast := &fakeForecastGateway{err: api.ErrUpstreamTimeout}
		uc := NewWeatherUseCase(geocoding, forecast, fixedClock)

		report, err := uc.GetCurrentWeather(context.Background(), "London")
		if !errors.Is(err, api.ErrUpstreamTimeout) {
			t.Errorf("Expected ErrUpstreamTimeout, got %v", err)
		}
		if report != nil {
			t.Errorf("Expected no partial report, got %+v", report)
		}
	})
}
