package server

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	_ "weather-relay/docs"
	"weather-relay/internal/application/controller"
	"weather-relay/internal/application/middleware"
	"weather-relay/internal/domain/usecase/health"
	"weather-relay/internal/domain/usecase/weather"
)

const (
	apiPrefix   = "/api"
	swaggerPath = "/swagger/*"
)

// Deps holds everything the HTTP layer needs
type Deps struct {
	HealthUseCase  health.UseCase
	WeatherUseCase weather.UseCase
	Tracer         trace.Tracer
	SwaggerEnabled bool
}

// New builds the echo instance with middleware and the full route table registered.
// Routes are not modified after New returns.
func New(deps Deps) *echo.Echo {
	if deps.Tracer == nil {
		deps.Tracer = noop.NewTracerProvider().Tracer("")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Init Middleware
	middleware.SetupErrorHandling(e)
	middleware.SetupRequestID(e)
	middleware.SetupCORS(e)
	middleware.SetupTracing(e, deps.Tracer)
	middleware.SetupRequestLogger(e)

	root := e.Group("")
	api := e.Group(apiPrefix)

	// Init Controller
	healthController := controller.NewHealthController(root, api, deps.HealthUseCase)
	weatherController := controller.NewWeatherController(api, deps.WeatherUseCase)

	// Init Routes
	healthController.InitHealthRoutes()
	weatherController.InitWeatherRoutes()

	if deps.SwaggerEnabled {
		e.GET(swaggerPath, echoSwagger.WrapHandler)
	}

	return e
}
