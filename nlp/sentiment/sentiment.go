package sentiment

import (
	"strings"
	"sync"

	"github.com/jonreiter/govader"

	"trenddit/models"
)

// Label thresholds follow common VADER practice: compound >= 0.05 is
// positive, <= -0.05 is negative, anything in between is neutral.
const (
	positiveThreshold = 0.05
	negativeThreshold = -0.05
)

var (
	analyzerOnce sync.Once
	analyzer     *govader.SentimentIntensityAnalyzer
)

// Score maps raw text to a compound polarity score in [-1, 1] and a
// categorical label. Empty or whitespace-only text yields (0, neutral).
// The lexicon is loaded once at process scope and read-only afterwards, so
// Score is a pure function of its input and safe for concurrent use.
func Score(text string) (float64, string) {
	if strings.TrimSpace(text) == "" {
		return 0.0, models.SentimentNeutral
	}

	analyzerOnce.Do(func() {
		analyzer = govader.NewSentimentIntensityAnalyzer()
	})

	compound := analyzer.PolarityScores(text).Compound
	return compound, Label(compound)
}

// Label maps a compound score to its categorical label.
func Label(compound float64) string {
	switch {
	case compound >= positiveThreshold:
		return models.SentimentPositive
	case compound <= negativeThreshold:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}
