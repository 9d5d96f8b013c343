package aggregation_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"trenddit/aggregation"
	"trenddit/models"
)

// clusterFixture builds two groups of posts with well separated embeddings:
// the first ten point along axis 0, the next ten along axis 1.
func clusterFixture() []models.Post {
	posts := make([]models.Post, 20)
	for i := range posts {
		vec := make([]float32, models.EmbeddingDim)
		axis := 0
		if i >= 10 {
			axis = 1
		}
		vec[axis] = 1
		posts[i] = models.Post{
			Title:     fmt.Sprintf("post %d", i),
			URL:       fmt.Sprintf("https://example.com/%d", i),
			Embedding: vec,
		}
	}
	return posts
}

func TestClustersInsufficientData(t *testing.T) {
	posts := make([]models.Post, 5)
	_, err := aggregation.Clusters(posts)
	assert.ErrorIs(t, err, aggregation.ErrInsufficientData)

	_, err = aggregation.Clusters(nil)
	assert.ErrorIs(t, err, aggregation.ErrInsufficientData)
}

func TestClustersSeparatesDistinctGroups(t *testing.T) {
	posts := clusterFixture()

	clusters, err := aggregation.Clusters(posts)
	assert.NoError(t, err)
	assert.Len(t, clusters, 2)

	sizes := []int{clusters[0].Size, clusters[1].Size}
	assert.ElementsMatch(t, []int{10, 10}, sizes)

	// each cluster's representative is the earliest post of its group
	reps := []string{clusters[0].Representative, clusters[1].Representative}
	assert.ElementsMatch(t, []string{"post 0", "post 10"}, reps)
}

func TestClustersDeterministic(t *testing.T) {
	posts := clusterFixture()

	first, err := aggregation.Clusters(posts)
	assert.NoError(t, err)
	second, err := aggregation.Clusters(posts)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestClustersCapAtSix(t *testing.T) {
	posts := make([]models.Post, 100)
	for i := range posts {
		vec := make([]float32, models.EmbeddingDim)
		vec[i%10] = 1
		posts[i] = models.Post{Title: fmt.Sprintf("post %d", i), Embedding: vec}
	}

	clusters, err := aggregation.Clusters(posts)
	assert.NoError(t, err)
	assert.Len(t, clusters, 6)

	total := 0
	for _, c := range clusters {
		total += c.Size
	}
	assert.Equal(t, len(posts), total)
}

func TestClustersMissingEmbeddings(t *testing.T) {
	// unenriched posts cluster as zero vectors instead of being dropped
	posts := make([]models.Post, 20)
	for i := range posts {
		posts[i] = models.Post{Title: fmt.Sprintf("post %d", i)}
		if i < 10 {
			vec := make([]float32, models.EmbeddingDim)
			vec[0] = 1
			posts[i].Embedding = vec
		}
	}

	clusters, err := aggregation.Clusters(posts)
	assert.NoError(t, err)

	total := 0
	for _, c := range clusters {
		total += c.Size
	}
	assert.Equal(t, len(posts), total)
}

func TestClustersRepresentativeStripsMarkup(t *testing.T) {
	posts := make([]models.Post, 20)
	for i := range posts {
		vec := make([]float32, models.EmbeddingDim)
		vec[i%2] = 1
		posts[i] = models.Post{
			Body:      "<p>plain text body</p>",
			Embedding: vec,
		}
	}

	clusters, err := aggregation.Clusters(posts)
	assert.NoError(t, err)
	for _, c := range clusters {
		assert.Equal(t, "plain text body", c.Representative)
	}
}
