package log

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLevelFromEnv(t *testing.T) {
	cases := map[string]zapcore.Level{
		"":      zapcore.InfoLevel,
		"debug": zapcore.DebugLevel,
		"WARN":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
		"bogus": zapcore.InfoLevel,
	}
	for value, want := range cases {
		if got := levelFromEnv(value); got != want {
			t.Errorf("levelFromEnv(%q) = %s, want %s", value, got, want)
		}
	}
}

func TestPackageLogger(t *testing.T) {
	previous := logger
	defer SetLogger(previous)

	core, logs := observer.New(zapcore.InfoLevel)
	SetLogger(zap.New(core))

	Debug("hidden")
	Info("✓ Found: London, United Kingdom", zap.String("city", "London"))
	Warn("✗ Geocoding failed for: Atlantis")
	Error("request failed", zap.Int("status", 504))

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(entries))
	}
	if entries[0].Message != "✓ Found: London, United Kingdom" || entries[0].ContextMap()["city"] != "London" {
		t.Errorf("Unexpected info entry %+v", entries[0])
	}
	if entries[1].Level != zapcore.WarnLevel || entries[1].Message != "✗ Geocoding failed for: Atlantis" {
		t.Errorf("Unexpected warn entry %+v", entries[1])
	}
	if entries[2].Level != zapcore.ErrorLevel || entries[2].ContextMap()["status"] != int64(504) {
		t.Errorf("Unexpected error entry %+v", entries[2])
	}
}
