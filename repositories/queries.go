package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"trenddit/models"
)

type QueryRepository struct {
	col *mongo.Collection
}

func NewQueryRepository(db *mongo.Database) *QueryRepository {
	return &QueryRepository{col: db.Collection("queries")}
}

// Insert records a saved search. Queries are write-once.
func (r *QueryRepository) Insert(ctx context.Context, q *models.Query) error {
	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, q)
	return err
}

// List returns saved searches, newest first.
func (r *QueryRepository) List(ctx context.Context) ([]models.Query, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.col.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var queries []models.Query
	if err := cursor.All(ctx, &queries); err != nil {
		return nil, err
	}
	return queries, nil
}
