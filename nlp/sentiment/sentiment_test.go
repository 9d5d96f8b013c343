package sentiment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trenddit/models"
	"trenddit/nlp/sentiment"
)

func TestScoreEmptyText(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		score, label := sentiment.Score(text)
		assert.Equal(t, 0.0, score)
		assert.Equal(t, models.SentimentNeutral, label)
	}
}

func TestScoreDeterministic(t *testing.T) {
	text := "This release is absolutely amazing, great work!"
	score1, label1 := sentiment.Score(text)
	score2, label2 := sentiment.Score(text)
	assert.Equal(t, score1, score2)
	assert.Equal(t, label1, label2)
}

func TestScoreBounds(t *testing.T) {
	for _, text := range []string{
		"I love this so much, best thing ever",
		"This is terrible, I hate it",
		"The sky is blue",
	} {
		score, _ := sentiment.Score(text)
		assert.GreaterOrEqual(t, score, -1.0)
		assert.LessOrEqual(t, score, 1.0)
	}
}

func TestScorePolarity(t *testing.T) {
	score, label := sentiment.Score("I love this, it is wonderful and great")
	assert.Positive(t, score)
	assert.Equal(t, models.SentimentPositive, label)

	score, label = sentiment.Score("This is horrible, awful and disgusting")
	assert.Negative(t, score)
	assert.Equal(t, models.SentimentNegative, label)
}

func TestLabelThresholdBoundaries(t *testing.T) {
	assert.Equal(t, models.SentimentPositive, sentiment.Label(0.05))
	assert.Equal(t, models.SentimentNegative, sentiment.Label(-0.05))
	assert.Equal(t, models.SentimentNeutral, sentiment.Label(0.049))
	assert.Equal(t, models.SentimentNeutral, sentiment.Label(-0.049))
	assert.Equal(t, models.SentimentNeutral, sentiment.Label(0))
}
