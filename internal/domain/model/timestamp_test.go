package model

import (
	"testing"
	"time"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
		want string
	}{
		{"microseconds", time.Date(2024, 5, 1, 12, 30, 45, 123456000, time.Local), "2024-05-01T12:30:45.123456"},
		{"leading zero microseconds", time.Date(2024, 5, 1, 12, 30, 45, 1000, time.Local), "2024-05-01T12:30:45.000001"},
		{"whole second", time.Date(2024, 5, 1, 12, 30, 45, 0, time.Local), "2024-05-01T12:30:45"},
		{"sub microsecond only", time.Date(2024, 5, 1, 12, 30, 45, 999, time.Local), "2024-05-01T12:30:45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTimestamp(tt.time); got != tt.want {
				t.Errorf("FormatTimestamp() = '%s', want '%s'", got, tt.want)
			}
		})
	}
}
