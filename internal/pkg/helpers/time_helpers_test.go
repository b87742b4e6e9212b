package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrentPeriod(t *testing.T) {
	january := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	june := time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC)
	july := time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC)
	december := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2026/06", CurrentPeriod("", january))
	assert.Equal(t, "2026/06", CurrentPeriod("", june))
	assert.Equal(t, "2026/12", CurrentPeriod("", july))
	assert.Equal(t, "2025/12", CurrentPeriod("", december))
}

func TestCurrentPeriodOverride(t *testing.T) {
	now := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024/12", CurrentPeriod("2024/12", now))
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 12*time.Hour, ParseDuration("12h", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("garbage", time.Hour))
	assert.Equal(t, time.Hour, ParseDuration("", time.Hour))
}
