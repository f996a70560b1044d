package weather

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"weather-relay/internal/domain/entity"
	"weather-relay/internal/domain/gateway/api"
	"weather-relay/pkg/log"
	"weather-relay/pkg/msg"
)

type weatherUseCase struct {
	geocodingGateway api.GeocodingGateway
	forecastGateway  api.ForecastGateway
	now              func() time.Time
}

func NewWeatherUseCase(geocodingGateway api.GeocodingGateway, forecastGateway api.ForecastGateway, now func() time.Time) UseCase {
	if now == nil {
		now = time.Now
	}
	return &weatherUseCase{
		geocodingGateway: geocodingGateway,
		forecastGateway:  forecastGateway,
		now:              now,
	}
}

// GetCurrentWeather resolves the city, then fetches its current conditions. The calls are sequential.
func (uc *weatherUseCase) GetCurrentWeather(ctx context.Context, city string) (*entity.WeatherReport, error) {
	if city == "" {
		return nil, ErrCityRequired
	}

	log.Info(msg.GetMessage("weather.request", city), zap.String("city", city))

	log.Info(msg.GetMessage("weather.geocode.start", city), zap.String("city", city))
	location, err := uc.geocodingGateway.SearchLocation(ctx, city)
	if err != nil {
		log.Warn(msg.GetMessage("weather.geocode.failed", city), zap.String("city", city), zap.Error(err))
		return nil, fmt.Errorf("failed to resolve city %q: %w", city, err)
	}
	log.Info(msg.GetMessage("weather.geocode.found", location.City, location.Country))
	log.Info(msg.GetMessage("weather.geocode.coordinates", location.Latitude, location.Longitude))

	log.Info(msg.GetMessage("weather.forecast.start"))
	current, err := uc.forecastGateway.GetCurrentConditions(ctx, location.Latitude, location.Longitude)
	if err != nil {
		log.Warn(msg.GetMessage("weather.forecast.failed", location.City), zap.String("city", city), zap.Error(err))
		return nil, fmt.Errorf("failed to fetch current weather for %q: %w", location.City, err)
	}

	report := ShapeReport(*location, *current, uc.now())

	log.Info(msg.GetMessage("weather.success"))
	log.Info(msg.GetMessage("weather.temperature", report.Temperature))
	log.Info(msg.GetMessage("weather.condition", report.Description))
	return &report, nil
}
