package api

import (
	"context"

	"weather-relay/internal/domain/model/external"
)

// ForecastGateway defines the interface for fetching current weather conditions
type ForecastGateway interface {
	// GetCurrentConditions returns the raw current block for the coordinates.
	// Fails with ErrNoCurrentData, ErrUpstreamStatus, ErrUpstreamTimeout,
	// ErrUpstreamTransport or ErrMalformedData.
	GetCurrentConditions(ctx context.Context, latitude, longitude float64) (*external.CurrentConditions, error)
}
