package services

import (
	"fmt"
	"time"
)

// timeframes supported by the feed and aggregate endpoints.
var timeframes = map[string]time.Duration{
	"1h":  time.Hour,
	"6h":  6 * time.Hour,
	"24h": 24 * time.Hour,
	"7d":  7 * 24 * time.Hour,
	"30d": 30 * 24 * time.Hour,
}

// DefaultTimeframe is used when a request leaves the window unset.
const DefaultTimeframe = "24h"

// ParseTimeframe resolves a timeframe token to its duration. Empty input
// means the default window.
func ParseTimeframe(s string) (time.Duration, error) {
	if s == "" {
		s = DefaultTimeframe
	}
	d, ok := timeframes[s]
	if !ok {
		return 0, fmt.Errorf("unknown timeframe %q", s)
	}
	return d, nil
}
