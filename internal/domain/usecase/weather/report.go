package weather

import (
	"time"

	"weather-relay/internal/domain/entity"
	"weather-relay/internal/domain/model"
	"weather-relay/internal/domain/model/external"
	"weather-relay/pkg/util/numberutils"
)

// ShapeReport builds the public report from a location and the raw current conditions.
// Absent measurements default to 0.
func ShapeReport(location entity.Location, current external.CurrentConditions, now time.Time) entity.WeatherReport {
	code := numberutils.ValueOrZero(current.WeatherCode)

	return entity.WeatherReport{
		City:          location.City,
		Country:       location.Country,
		Admin1:        location.Admin1,
		Temperature:   numberutils.RoundFloat(numberutils.ValueOrZero(current.Temperature2m), 1),
		FeelsLike:     numberutils.RoundFloat(numberutils.ValueOrZero(current.ApparentTemperature), 1),
		Humidity:      numberutils.ValueOrZero(current.RelativeHumidity2m),
		Pressure:      numberutils.RoundToInt(numberutils.ValueOrZero(current.PressureMsl)),
		WindSpeed:     numberutils.RoundFloat(numberutils.ValueOrZero(current.WindSpeed10m), 1),
		Precipitation: numberutils.ValueOrZero(current.Precipitation),
		Description:   DescribeWeatherCode(code),
		WeatherCode:   code,
		Latitude:      location.Latitude,
		Longitude:     location.Longitude,
		Timestamp:     model.FormatTimestamp(now),
	}
}
