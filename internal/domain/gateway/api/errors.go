package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	nethttp "net/http"
	"time"

	"weather-relay/pkg/http"
)

// DefaultTimeout bounds each Open-Meteo call when no timeout is configured
const DefaultTimeout = 10 * time.Second

var (
	// ErrLocationNotFound is returned when the geocoding search has no results.
	ErrLocationNotFound = errors.New("location not found")
	// ErrNoCurrentData is returned when the forecast response has no current block.
	ErrNoCurrentData = errors.New("no current weather data")
	// ErrUpstreamStatus is returned when an upstream answers with a status other than 200.
	ErrUpstreamStatus = errors.New("upstream returned unexpected status")
	// ErrUpstreamTimeout is returned when an upstream call exceeds its deadline.
	ErrUpstreamTimeout = errors.New("upstream request timed out")
	// ErrUpstreamTransport is returned when an upstream cannot be reached.
	ErrUpstreamTransport = errors.New("upstream connection failed")
	// ErrMalformedData is returned when an upstream body lacks a required field or cannot be decoded.
	ErrMalformedData = errors.New("malformed upstream data")
)

// classifyCallError maps the outcome of a pkg/http call that returned err onto the upstream error taxonomy
func classifyCallError(upstream string, status int, err error) error {
	if isTimeout(err) {
		return fmt.Errorf("%s: %w: %v", upstream, ErrUpstreamTimeout, err)
	}
	if status == 0 {
		return fmt.Errorf("%s: %w: %v", upstream, ErrUpstreamTransport, err)
	}
	if status != nethttp.StatusOK || errors.Is(err, http.ErrUnexpectedStatus) {
		return fmt.Errorf("%s: %w: status %d", upstream, ErrUpstreamStatus, status)
	}
	return fmt.Errorf("%s: %w: %v", upstream, ErrMalformedData, err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
