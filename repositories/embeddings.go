package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"trenddit/models"
)

type EmbeddingRepository struct {
	col *mongo.Collection
}

func NewEmbeddingRepository(db *mongo.Database) *EmbeddingRepository {
	return &EmbeddingRepository{col: db.Collection("embeddings")}
}

// UpsertMany writes embedding rows for the given posts in one bulk write.
// Callers treat failure here as non-fatal; the posts collection already
// carries the vectors.
func (r *EmbeddingRepository) UpsertMany(ctx context.Context, rows []models.PostEmbedding) error {
	if len(rows) == 0 {
		return nil
	}

	writes := make([]mongo.WriteModel, 0, len(rows))
	for _, row := range rows {
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"post_id": row.PostID}).
			SetReplacement(row).
			SetUpsert(true))
	}

	_, err := r.col.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false))
	return err
}
