package repositories

import (
	"context"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"trenddit/models"
)

// maxListLimit is the safe ceiling for window reads used by aggregation.
const maxListLimit = 500

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection("posts")}
}

// FilterNew returns the subset of candidate IDs not already present in the
// store, preserving input order. It issues exactly one existence query
// regardless of batch size; an empty input returns empty without a query.
func (r *PostRepository) FilterNew(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cursor, err := r.col.Find(ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetProjection(bson.M{"_id": 1}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	existing := make(map[string]struct{})
	for cursor.Next(ctx) {
		var doc struct {
			ID string `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		existing[doc.ID] = struct{}{}
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	fresh := make([]string, 0, len(ids)-len(existing))
	for _, id := range ids {
		if _, ok := existing[id]; !ok {
			fresh = append(fresh, id)
		}
	}
	return fresh, nil
}

// InsertMany persists the given posts in a single unordered bulk write.
func (r *PostRepository) InsertMany(ctx context.Context, posts []models.Post) error {
	if len(posts) == 0 {
		return nil
	}
	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(posts))
	for i := range posts {
		if posts[i].InsertedAt.IsZero() {
			posts[i].InsertedAt = now
		}
		docs = append(docs, posts[i])
	}
	_, err := r.col.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	return err
}

type ListPostsOptions struct {
	Keyword string
	Sources []string
	Since   time.Time
	Offset  int
	Limit   int
}

// BuildListFilter builds the live-feed/aggregation predicate: keyword is a
// case-insensitive substring match against title OR body OR the record's own
// keyword field, source must be in Sources when non-empty, and created_at
// must be at or after Since.
func BuildListFilter(opt ListPostsOptions) bson.M {
	filter := bson.M{}

	if kw := strings.TrimSpace(opt.Keyword); kw != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(kw), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": re},
			bson.M{"body": re},
			bson.M{"keyword": re},
		}
	}
	if len(opt.Sources) > 0 {
		filter["source"] = bson.M{"$in": opt.Sources}
	}
	if !opt.Since.IsZero() {
		filter["created_at"] = bson.M{"$gte": opt.Since}
	}
	return filter
}

// Count returns the number of posts matching the predicate, for pagination
// totals.
func (r *PostRepository) Count(ctx context.Context, opt ListPostsOptions) (int64, error) {
	return r.col.CountDocuments(ctx, BuildListFilter(opt))
}

// List returns posts matching the predicate, newest first. Limit <= 0 or
// above the ceiling falls back to the 500-row cap.
func (r *PostRepository) List(ctx context.Context, opt ListPostsOptions) ([]models.Post, error) {
	limit := opt.Limit
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(opt.Offset)).
		SetLimit(int64(limit))

	cursor, err := r.col.Find(ctx, BuildListFilter(opt), findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}
