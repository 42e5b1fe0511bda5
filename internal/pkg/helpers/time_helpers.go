package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// DateLayout is the wire format for date-only values (lesson dates,
// completion dates, report windows).
const DateLayout = "2006-01-02"

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// ParseDateParam parses an optional date query parameter. A missing or
// malformed value yields the zero time, which downstream filtering
// treats as "no bound" rather than an error.
func ParseDateParam(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		log.Warn().Str("value", value).Msg("Ignoring malformed date parameter")
		return time.Time{}
	}
	return parsed
}

// Today returns the current date truncated to midnight UTC, the
// reference point for missed-coverage checks.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
