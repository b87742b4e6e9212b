package helpers

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, returns the default on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// CurrentPeriod returns the academic period identifier for t, in the
// "YYYY/06" (January-June) or "YYYY/12" (July-December) form. A non-empty
// override wins, so deployments can pin the open survey period.
func CurrentPeriod(override string, t time.Time) string {
	if override != "" {
		return override
	}
	half := "12"
	if t.Month() <= time.June {
		half = "06"
	}
	return fmt.Sprintf("%d/%s", t.Year(), half)
}
