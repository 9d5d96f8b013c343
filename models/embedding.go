package models

// PostEmbedding is a row in the optional embeddings side table, kept for
// consumers that want vectors without loading whole post documents.
// Collection: embeddings.
type PostEmbedding struct {
	PostID string    `bson:"post_id" json:"post_id"`
	Vector []float32 `bson:"vector" json:"vector"`
}
