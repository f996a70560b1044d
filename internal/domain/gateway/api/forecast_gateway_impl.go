package api

import (
	"context"
	"fmt"
	nethttp "net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"weather-relay/internal/domain/model/external"
	"weather-relay/pkg/http"
)

const forecastPath = "/v1/forecast"

// CurrentVariables are the "current" fields requested from the forecast API
var CurrentVariables = []string{
	"temperature_2m",
	"relative_humidity_2m",
	"apparent_temperature",
	"precipitation",
	"weather_code",
	"wind_speed_10m",
	"pressure_msl",
}

// forecastGatewayImpl implements the ForecastGateway interface
type forecastGatewayImpl struct {
	httpClient *http.Client
	timeout    time.Duration
	tracer     trace.Tracer
}

// NewForecastGateway creates a new instance of ForecastGateway with HTTP client
func NewForecastGateway(baseUrl string, clientOptions http.ClientOptions, tracer trace.Tracer) ForecastGateway {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}
	return &forecastGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
		timeout:    clientOptions.ReadTimeout,
		tracer:     tracer,
	}
}

// GetCurrentConditions fetches the current block; timezone is resolved upstream from the coordinates
func (f *forecastGatewayImpl) GetCurrentConditions(ctx context.Context, latitude, longitude float64) (*external.CurrentConditions, error) {
	ctx, span := f.tracer.Start(ctx, "GET-WEATHER", trace.WithAttributes(
		attribute.Float64("latitude", latitude),
		attribute.Float64("longitude", longitude),
	))
	defer span.End()

	ctx, cancel := withTimeout(ctx, f.timeout)
	defer cancel()

	successResp, _, status, err := f.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(forecastPath).
		WithQueryParams(map[string]string{
			"latitude":  strconv.FormatFloat(latitude, 'f', -1, 64),
			"longitude": strconv.FormatFloat(longitude, 'f', -1, 64),
			"current":   strings.Join(CurrentVariables, ","),
			"timezone":  "auto",
		}).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	span.SetAttributes(attribute.Int("http.status_code", status))

	if err != nil {
		err = classifyCallError("forecast", status, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if status != nethttp.StatusOK {
		err = fmt.Errorf("forecast: %w: status %d", ErrUpstreamStatus, status)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	response := successResp.(*external.ForecastResponse)
	if response.Current.IsEmpty() {
		err = fmt.Errorf("forecast: %w", ErrNoCurrentData)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return response.Current, nil
}
