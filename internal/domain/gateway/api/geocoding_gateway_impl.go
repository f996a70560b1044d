package api

import (
	"context"
	"fmt"
	nethttp "net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"weather-relay/internal/domain/entity"
	"weather-relay/internal/domain/model/external"
	"weather-relay/pkg/http"
)

const (
	geocodingSearchPath = "/v1/search"
	defaultCountry      = "Unknown"
)

// geocodingGatewayImpl implements the GeocodingGateway interface
type geocodingGatewayImpl struct {
	httpClient *http.Client
	timeout    time.Duration
	tracer     trace.Tracer
}

// NewGeocodingGateway creates a new instance of GeocodingGateway with HTTP client
func NewGeocodingGateway(baseUrl string, clientOptions http.ClientOptions, tracer trace.Tracer) GeocodingGateway {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}
	return &geocodingGatewayImpl{
		httpClient: http.NewHttpClient(baseUrl, clientOptions),
		timeout:    clientOptions.ReadTimeout,
		tracer:     tracer,
	}
}

// SearchLocation searches the place name and keeps the first result only
func (g *geocodingGatewayImpl) SearchLocation(ctx context.Context, name string) (*entity.Location, error) {
	ctx, span := g.tracer.Start(ctx, "GET-LOCATION", trace.WithAttributes(attribute.String("city", name)))
	defer span.End()

	ctx, cancel := withTimeout(ctx, g.timeout)
	defer cancel()

	successResp, _, status, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(http.GET).
		WithPath(geocodingSearchPath).
		WithQueryParams(map[string]string{
			"name":     name,
			"count":    "1",
			"language": "en",
			"format":   "json",
		}).
		WithSuccessResp(&external.GeocodingSearchResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	span.SetAttributes(attribute.Int("http.status_code", status))

	if err != nil {
		err = classifyCallError("geocoding", status, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if status != nethttp.StatusOK {
		err = fmt.Errorf("geocoding: %w: status %d", ErrUpstreamStatus, status)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	response := successResp.(*external.GeocodingSearchResponse)
	if len(response.Results) == 0 {
		return nil, fmt.Errorf("geocoding %q: %w", name, ErrLocationNotFound)
	}

	location, err := toLocation(response.Results[0])
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return location, nil
}

// toLocation converts a geocoding match into a Location, applying defaults for optional fields
func toLocation(result external.GeocodingResult) (*entity.Location, error) {
	if result.Latitude == nil || result.Longitude == nil || result.Name == nil {
		return nil, fmt.Errorf("geocoding: %w: result lacks name or coordinates", ErrMalformedData)
	}

	location := &entity.Location{
		Latitude:  *result.Latitude,
		Longitude: *result.Longitude,
		City:      *result.Name,
		Country:   defaultCountry,
	}
	if result.Country != nil {
		location.Country = *result.Country
	}
	if result.Admin1 != nil {
		location.Admin1 = *result.Admin1
	}
	return location, nil
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
