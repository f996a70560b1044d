package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"weather-relay/internal/domain/gateway/api"
	"weather-relay/internal/domain/model"
	"weather-relay/internal/domain/usecase/weather"
	"weather-relay/pkg/log"
	"weather-relay/pkg/msg"
)

const (
	MessageCityRequired    = "City parameter is required"
	MessageCityNotFound    = "City \"%s\" not found"
	MessageUpstreamStatus  = "Failed to fetch weather data from Open-Meteo API"
	MessageNoWeatherData   = "No weather data available"
	MessageUpstreamTimeout = "Request to weather service timed out"
	MessageUpstreamConnect = "Failed to connect to weather service"
	MessageInvalidUpstream = "Invalid data received from weather service"
	MessageInternalError   = "Internal server error"
	weatherCityQueryParam  = "city"
)

// weatherErrorMapping is the single translation table from lookup failures to responses.
// Entries are checked in order with errors.Is.
var weatherErrorMapping = []struct {
	target  error
	status  int
	message string
}{
	{weather.ErrCityRequired, http.StatusBadRequest, MessageCityRequired},
	{api.ErrLocationNotFound, http.StatusNotFound, MessageCityNotFound},
	{api.ErrUpstreamTimeout, http.StatusGatewayTimeout, MessageUpstreamTimeout},
	{api.ErrUpstreamTransport, http.StatusServiceUnavailable, MessageUpstreamConnect},
	{api.ErrUpstreamStatus, http.StatusInternalServerError, MessageUpstreamStatus},
	{api.ErrNoCurrentData, http.StatusInternalServerError, MessageNoWeatherData},
	{api.ErrMalformedData, http.StatusInternalServerError, MessageInvalidUpstream},
}

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather", controller.GetWeather)
	controller.api.OPTIONS("/weather", controller.Preflight)
}

// GetWeather godoc
// @Summary Get current weather for a city
// @Description Geocode the city with Open-Meteo and return its current conditions
// @Tags weather
// @Produce json
// @Param city query string true "City name"
// @Success 200 {object} entity.WeatherReport "Current weather"
// @Failure 400 {object} model.ErrorResponse "City parameter is required"
// @Failure 404 {object} model.ErrorResponse "City not found"
// @Failure 500 {object} model.ErrorResponse "Upstream returned an error or invalid data"
// @Failure 503 {object} model.ErrorResponse "Upstream unreachable"
// @Failure 504 {object} model.ErrorResponse "Upstream timed out"
// @Router /api/weather [get]
func (controller *WeatherController) GetWeather(c echo.Context) error {
	city := c.QueryParam(weatherCityQueryParam)
	if city == "" {
		log.Warn(msg.GetMessage("weather.city-missing"))
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: MessageCityRequired})
	}

	report, err := controller.useCase.GetCurrentWeather(c.Request().Context(), city)
	if err != nil {
		status, message := weatherErrorResponse(err, city)
		log.Error(msg.GetMessage("weather.failed", city, status), zap.String("city", city), zap.Int("status", status), zap.Error(err))
		return c.JSON(status, model.ErrorResponse{Error: message})
	}
	return c.JSON(http.StatusOK, report)
}

// Preflight godoc
// @Summary CORS preflight
// @Description Answer browser preflight requests
// @Tags weather
// @Success 204 "No content"
// @Router /api/weather [options]
func (controller *WeatherController) Preflight(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func weatherErrorResponse(err error, city string) (int, string) {
	for _, mapping := range weatherErrorMapping {
		if errors.Is(err, mapping.target) {
			if mapping.target == api.ErrLocationNotFound {
				return mapping.status, fmt.Sprintf(mapping.message, city)
			}
			return mapping.status, mapping.message
		}
	}
	return http.StatusInternalServerError, MessageInternalError
}
