package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"weather-relay/configs"
	"weather-relay/internal/application/server"
	"weather-relay/internal/domain/gateway/api"
	"weather-relay/internal/domain/usecase/health"
	"weather-relay/internal/domain/usecase/weather"
	"weather-relay/internal/infra/tracing"
	pkghttp "weather-relay/pkg/http"
	"weather-relay/pkg/log"
	"weather-relay/pkg/msg"
	"weather-relay/pkg/resource"
)

var endpoints = map[string]string{
	"/api/health":              "GET - Health check endpoint",
	"/api/weather?city=<name>": "GET - Get weather for a city",
}

// @title Weather Relay API
// @version 2.0
// @description Current weather for a city, relayed from Open-Meteo geocoding and forecast APIs.
// @BasePath /
func main() {
	defer log.Sync()

	if err := configs.Load(); err != nil {
		log.Fatal(msg.GetMessage("app.config-failed", err), zap.Error(err))
	}
	log.Info(msg.GetMessage("app.start"))

	// Init infra
	shutdownTracing, err := tracing.Setup(tracing.Config{
		Enabled:     resource.GetBool("app.tracing.enabled"),
		ServiceName: configs.Env.ApplicationName,
		ZipkinURL:   resource.GetString("app.tracing.zipkin-url"),
	})
	if err != nil {
		log.Fatal(msg.GetMessage("app.tracing-failed", err), zap.Error(err))
	}
	tracer := otel.Tracer(configs.Env.ApplicationName)

	timeout := resource.GetDurationOrDefault("app.open-meteo.timeout", api.DefaultTimeout)
	clientOptions := pkghttp.ClientOptions{
		MaxIdleConns:      resource.GetInt("app.open-meteo.max-idle-conns"),
		ConnectionTimeout: timeout,
		ReadTimeout:       timeout,
		Logger:            pkghttp.NewZapLogger(),
	}

	// Init Gateway
	geocodingGateway := api.NewGeocodingGateway(resource.GetString("app.open-meteo.geocoding-url"), clientOptions, tracer)
	forecastGateway := api.NewForecastGateway(resource.GetString("app.open-meteo.forecast-url"), clientOptions, tracer)

	// Init UseCase
	healthUseCase := health.NewHealthUseCase(health.Info{
		Service:     resource.GetString("app.name"),
		DisplayName: resource.GetString("app.display-name"),
		Version:     resource.GetString("app.version"),
		API:         resource.GetString("app.open-meteo.id"),
		APIName:     resource.GetString("app.open-meteo.name"),
		Endpoints:   endpoints,
	}, nil)
	weatherUseCase := weather.NewWeatherUseCase(geocodingGateway, forecastGateway, nil)

	e := server.New(server.Deps{
		HealthUseCase:  healthUseCase,
		WeatherUseCase: weatherUseCase,
		Tracer:         tracer,
		SwaggerEnabled: resource.GetBool("app.swagger.enabled"),
	})

	port := resource.GetStringOrDefault("app.server.port", "5000")
	logBanner(port)

	// Start Routes
	go func() {
		log.Info(msg.GetMessage("app.started", port))
		if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(msg.GetMessage("app.start-failed", err), zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info(msg.GetMessage("app.stopping"))

	ctx, cancel := context.WithTimeout(context.Background(), resource.GetDurationOrDefault("app.server.shutdown-timeout", defaultShutdownTimeout))
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error(msg.GetMessage("app.stop-failed", err), zap.Error(err))
	}
	if err := shutdownTracing(ctx); err != nil {
		log.Error(msg.GetMessage("app.stop-failed", err), zap.Error(err))
	}
	log.Info(msg.GetMessage("app.stopped"))
}
