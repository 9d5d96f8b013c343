package aggregation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trenddit/aggregation"
	"trenddit/models"
)

func TestTopTermsCountsAndOrder(t *testing.T) {
	posts := []models.Post{
		{Title: "rust compiler", Body: "rust borrow checker"},
		{Title: "rust compiler speed", Body: ""},
	}

	terms := aggregation.TopTerms(posts, 30)
	assert.NotEmpty(t, terms)

	byTerm := make(map[string]int, len(terms))
	for _, tc := range terms {
		byTerm[tc.Term] = tc.Count
	}
	assert.Equal(t, 3, byTerm["rust"])
	assert.Equal(t, 2, byTerm["compiler"])
	assert.Equal(t, 2, byTerm["rust compiler"])

	// most frequent term first
	assert.Equal(t, "rust", terms[0].Term)
}

func TestTopTermsDropsStopwords(t *testing.T) {
	posts := []models.Post{
		{Title: "the compiler is the best", Body: "and it is fast"},
	}

	terms := aggregation.TopTerms(posts, 30)
	for _, tc := range terms {
		assert.NotEqual(t, "the", tc.Term)
		assert.NotEqual(t, "is", tc.Term)
		assert.NotEqual(t, "and", tc.Term)
	}
}

func TestTopTermsTruncatesToN(t *testing.T) {
	posts := []models.Post{
		{Title: "alpha beta gamma delta epsilon zeta"},
	}

	terms := aggregation.TopTerms(posts, 3)
	assert.Len(t, terms, 3)
}

func TestTopTermsDeterministic(t *testing.T) {
	posts := []models.Post{
		{Title: "graph database benchmark", Body: "query latency numbers"},
		{Title: "vector database benchmark", Body: "recall latency numbers"},
	}

	first := aggregation.TopTerms(posts, 30)
	second := aggregation.TopTerms(posts, 30)
	assert.Equal(t, first, second)
}

func TestTopTermsEmpty(t *testing.T) {
	assert.Empty(t, aggregation.TopTerms(nil, 30))
}
