package weather

import (
	"context"
	"errors"

	"weather-relay/internal/domain/entity"
)

// ErrCityRequired is returned when the lookup is asked for an empty city name
var ErrCityRequired = errors.New("city is required")

type UseCase interface {
	// GetCurrentWeather geocodes city and returns its current weather report.
	// Errors wrap ErrCityRequired or one of the gateway/api sentinel errors.
	GetCurrentWeather(ctx context.Context, city string) (*entity.WeatherReport, error)
}
