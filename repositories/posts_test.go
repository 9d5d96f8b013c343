package repositories_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"trenddit/repositories"
)

func TestBuildListFilterKeywordMatchesThreeFields(t *testing.T) {
	filter := repositories.BuildListFilter(repositories.ListPostsOptions{
		Keyword: "openai",
	})

	or, ok := filter["$or"].(bson.A)
	assert.True(t, ok)
	assert.Len(t, or, 3)

	fields := make([]string, 0, 3)
	for _, cond := range or {
		m := cond.(bson.M)
		for field, v := range m {
			fields = append(fields, field)
			re := v.(primitive.Regex)
			assert.Equal(t, "openai", re.Pattern)
			assert.Equal(t, "i", re.Options)
		}
	}
	assert.ElementsMatch(t, []string{"title", "body", "keyword"}, fields)
}

func TestBuildListFilterEscapesRegexMeta(t *testing.T) {
	filter := repositories.BuildListFilter(repositories.ListPostsOptions{
		Keyword: "c++ (lang)",
	})
	or := filter["$or"].(bson.A)
	re := or[0].(bson.M)["title"].(primitive.Regex)
	assert.Equal(t, `c\+\+ \(lang\)`, re.Pattern)
}

func TestBuildListFilterSourcesAndWindow(t *testing.T) {
	since := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	filter := repositories.BuildListFilter(repositories.ListPostsOptions{
		Sources: []string{"reddit"},
		Since:   since,
	})

	assert.Equal(t, bson.M{"$in": []string{"reddit"}}, filter["source"])
	assert.Equal(t, bson.M{"$gte": since}, filter["created_at"])
	_, hasOr := filter["$or"]
	assert.False(t, hasOr)
}

func TestBuildListFilterEmptyOptions(t *testing.T) {
	filter := repositories.BuildListFilter(repositories.ListPostsOptions{Keyword: "   "})
	assert.Empty(t, filter)
}
