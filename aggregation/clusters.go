package aggregation

import (
	"errors"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"trenddit/models"
)

// ErrInsufficientData means the post set is too small to form at least two
// topic clusters. Callers report it as a state, not a failure.
var ErrInsufficientData = errors.New("insufficient data for clustering")

const (
	minClusters   = 2
	maxClusters   = 6
	postsPerK     = 10
	maxIterations = 100
	clusterSeed   = 42
	snippetLimit  = 200
)

// TopicCluster is one approximate topic with a representative post.
type TopicCluster struct {
	ID             int    `json:"id"`
	Size           int    `json:"size"`
	Representative string `json:"representative"`
	URL            string `json:"url"`
}

// Clusters groups posts by embedding similarity using k-means with a fixed
// seed, so repeated calls over the same post set agree. Posts without an
// embedding participate as zero vectors rather than being dropped. The
// cluster count is postCount/10 clamped to [2, 6]; sets too small to yield
// two clusters report ErrInsufficientData.
func Clusters(posts []models.Post) ([]TopicCluster, error) {
	k := len(posts) / postsPerK
	if k < minClusters {
		return nil, ErrInsufficientData
	}
	if k > maxClusters {
		k = maxClusters
	}

	matrix := make([][]float64, len(posts))
	for i, p := range posts {
		row := make([]float64, models.EmbeddingDim)
		for j, v := range p.Embedding {
			if j >= models.EmbeddingDim {
				break
			}
			row[j] = float64(v)
		}
		matrix[i] = row
	}

	assignments := kmeansPartition(matrix, k)

	clusters := make([]TopicCluster, k)
	for c := range clusters {
		clusters[c].ID = c
	}
	for i, c := range assignments {
		clusters[c].Size++
		// first post assigned to the cluster, in original order, is its
		// representative
		if clusters[c].Size == 1 {
			clusters[c].Representative = representativeText(posts[i])
			clusters[c].URL = posts[i].URL
		}
	}
	return clusters, nil
}

func representativeText(p models.Post) string {
	if p.Title != "" {
		return truncateRunes(p.Title, snippetLimit)
	}
	return truncateRunes(StripHTML(p.Body), snippetLimit)
}

// kmeansPartition runs seeded k-means++ over the rows and returns a cluster
// index per row.
func kmeansPartition(matrix [][]float64, k int) []int {
	rng := rand.New(rand.NewSource(clusterSeed))
	centers := seedCenters(matrix, k, rng)

	assignments := make([]int, len(matrix))
	for iter := 0; iter < maxIterations; iter++ {
		changed := false
		for i, row := range matrix {
			best := nearestCenter(row, centers)
			if best != assignments[i] {
				assignments[i] = best
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}

		// recompute centers; an emptied cluster keeps its old center
		counts := make([]int, k)
		next := make([][]float64, k)
		for c := range next {
			next[c] = make([]float64, len(matrix[0]))
		}
		for i, row := range matrix {
			c := assignments[i]
			floats.Add(next[c], row)
			counts[c]++
		}
		for c := range next {
			if counts[c] == 0 {
				continue
			}
			floats.Scale(1/float64(counts[c]), next[c])
			centers[c] = next[c]
		}
	}
	return assignments
}

// seedCenters picks initial centers k-means++ style: the first uniformly,
// each following one weighted by squared distance to the nearest chosen
// center.
func seedCenters(matrix [][]float64, k int, rng *rand.Rand) [][]float64 {
	centers := make([][]float64, 0, k)
	centers = append(centers, matrix[rng.Intn(len(matrix))])

	for len(centers) < k {
		weights := make([]float64, len(matrix))
		total := 0.0
		for i, row := range matrix {
			d := distanceToNearest(row, centers)
			weights[i] = d * d
			total += weights[i]
		}
		if total == 0 {
			// all points coincide with a center; fall back to uniform
			centers = append(centers, matrix[rng.Intn(len(matrix))])
			continue
		}
		target := rng.Float64() * total
		acc := 0.0
		chosen := len(matrix) - 1
		for i, w := range weights {
			acc += w
			if acc >= target {
				chosen = i
				break
			}
		}
		centers = append(centers, matrix[chosen])
	}
	return centers
}

func nearestCenter(row []float64, centers [][]float64) int {
	best, bestDist := 0, math.Inf(1)
	for c, center := range centers {
		if d := floats.Distance(row, center, 2); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

func distanceToNearest(row []float64, centers [][]float64) float64 {
	best := math.Inf(1)
	for _, center := range centers {
		if d := floats.Distance(row, center, 2); d < best {
			best = d
		}
	}
	return best
}
