package model

import "time"

const (
	// TimestampLayout is ISO-8601 local time with microseconds and no offset
	TimestampLayout        = "2006-01-02T15:04:05.000000"
	timestampSecondsLayout = "2006-01-02T15:04:05"
)

// FormatTimestamp renders t in local time, leaving out the fraction when there are no microseconds
func FormatTimestamp(t time.Time) string {
	t = t.Local()
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format(timestampSecondsLayout)
	}
	return t.Format(TimestampLayout)
}
