package api

import (
	"context"

	"weather-relay/internal/domain/entity"
)

// GeocodingGateway defines the interface for resolving place names to coordinates
type GeocodingGateway interface {
	// SearchLocation returns the first match for name.
	// Fails with ErrLocationNotFound, ErrUpstreamStatus, ErrUpstreamTimeout,
	// ErrUpstreamTransport or ErrMalformedData.
	SearchLocation(ctx context.Context, name string) (*entity.Location, error)
}
