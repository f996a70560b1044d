package http

import (
	"go.uber.org/zap"

	"weather-relay/pkg/log"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called after an error HTTP status or a transport failure (httpStatus 0)
	LogResponseError(method, url string, headers map[string]string, httpStatus int, responseBody string, latency int64, err error)
}

type noopLogger struct{}

func (noopLogger) LogRequest(string, string, map[string]string) {}

func (noopLogger) LogResponseSuccess(string, string, map[string]string, int, string, int64) {}

func (noopLogger) LogResponseError(string, string, map[string]string, int, string, int64, error) {}

// ZapLogger writes outbound traffic through pkg/log. Response bodies of successful calls are logged at debug level only.
type ZapLogger struct{}

// NewZapLogger creates an HTTPLogger backed by the application logger.
func NewZapLogger() HTTPLogger {
	return ZapLogger{}
}

func (ZapLogger) LogRequest(method, url string, headers map[string]string) {
	log.Debug("outbound request",
		zap.String("method", method),
		zap.String("url", url),
		zap.Any("headers", headers))
}

func (ZapLogger) LogResponseSuccess(method, url string, _ map[string]string, httpStatus int, responseBody string, latency int64) {
	log.Info("outbound request completed",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
	log.Debug("outbound response body", zap.String("url", url), zap.String("body", responseBody))
}

func (ZapLogger) LogResponseError(method, url string, _ map[string]string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn("outbound request failed",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("body", responseBody),
		zap.Error(err))
}
