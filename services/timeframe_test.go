package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"trenddit/services"
)

func TestParseTimeframe(t *testing.T) {
	cases := map[string]time.Duration{
		"":    24 * time.Hour,
		"1h":  time.Hour,
		"6h":  6 * time.Hour,
		"24h": 24 * time.Hour,
		"7d":  7 * 24 * time.Hour,
		"30d": 30 * 24 * time.Hour,
	}
	for in, want := range cases {
		got, err := services.ParseTimeframe(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseTimeframeUnknown(t *testing.T) {
	_, err := services.ParseTimeframe("2w")
	assert.Error(t, err)
}
