package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Expected JSON body, got '%s'", rec.Body.String())
	}
	return body["error"]
}

func TestErrorHandling(t *testing.T) {
	e := echo.New()
	SetupErrorHandling(e)
	e.GET("/panic", func(c echo.Context) error { panic("boom") })
	e.GET("/fail", func(c echo.Context) error { return errors.New("database exploded") })
	e.GET("/bad", func(c echo.Context) error { return echo.NewHTTPError(http.StatusBadRequest, "bad input") })

	cases := []struct {
		method  string
		target  string
		status  int
		message string
	}{
		{http.MethodGet, "/panic", http.StatusInternalServerError, MessageInternalError},
		{http.MethodGet, "/fail", http.StatusInternalServerError, MessageInternalError},
		{http.MethodGet, "/bad", http.StatusBadRequest, "bad input"},
		{http.MethodGet, "/nowhere", http.StatusNotFound, MessageEndpointNotFound},
		{http.MethodDelete, "/fail", http.StatusMethodNotAllowed, MessageMethodNotAllowed},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.target, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.target, nil))
			if rec.Code != tc.status {
				t.Errorf("Expected status %d, got %d", tc.status, rec.Code)
			}
			if got := errorBody(t, rec); got != tc.message {
				t.Errorf("Expected '%s', got '%s'", tc.message, got)
			}
		})
	}
}

func TestCORS(t *testing.T) {
	e := echo.New()
	SetupErrorHandling(e)
	SetupCORS(e)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	if got := rec.Header().Get(echo.HeaderAccessControlAllowOrigin); got != "*" {
		t.Errorf("Expected allow origin '*', got '%s'", got)
	}
	if got := rec.Header().Get(echo.HeaderAccessControlAllowMethods); got != "GET, POST, OPTIONS" {
		t.Errorf("Unexpected allow methods '%s'", got)
	}
	if got := rec.Header().Get(echo.HeaderAccessControlAllowHeaders); got != "Content-Type" {
		t.Errorf("Unexpected allow headers '%s'", got)
	}
}

func TestTracing(t *testing.T) {
	previous := otel.GetTextMapPropagator()
	otel.SetTextMapPropagator(propagation.TraceContext{})
	defer otel.SetTextMapPropagator(previous)

	recorder := tracetest.NewSpanRecorder()
	tracer := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)).Tracer("test")

	e := echo.New()
	SetupErrorHandling(e)
	SetupTracing(e, tracer)
	e.GET("/api/weather", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/api/fail", func(c echo.Context) error { return errors.New("boom") })

	req := httptest.NewRequest(http.MethodGet, "/api/weather", nil)
	req.Header.Set("traceparent", "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01")
	e.ServeHTTP(httptest.NewRecorder(), req)
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/fail", nil))

	spans := recorder.Ended()
	if len(spans) != 2 {
		t.Fatalf("Expected 2 spans, got %d", len(spans))
	}

	if spans[0].Name() != "GET /api/weather" {
		t.Errorf("Unexpected span name '%s'", spans[0].Name())
	}
	if got := spans[0].SpanContext().TraceID().String(); got != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Errorf("Expected propagated trace id, got %s", got)
	}
	if spans[1].Status().Code != codes.Error {
		t.Errorf("Expected error status on failed span, got %v", spans[1].Status())
	}
}
