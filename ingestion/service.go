package ingestion

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"trenddit/collector"
	"trenddit/config"
	"trenddit/eventbus"
	"trenddit/events"
	"trenddit/internal/logger"
	"trenddit/models"
	"trenddit/nlp/embedder"
	"trenddit/nlp/sentiment"
)

// PostStore is the slice of the posts repository the pipeline needs.
type PostStore interface {
	FilterNew(ctx context.Context, ids []string) ([]string, error)
	InsertMany(ctx context.Context, posts []models.Post) error
}

// EmbeddingStore is the optional embeddings side table.
type EmbeddingStore interface {
	UpsertMany(ctx context.Context, rows []models.PostEmbedding) error
}

// IngestResult reports what one ingestion run did.
type IngestResult struct {
	Fetched  int `json:"fetched"`
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}

// Service orchestrates one ingestion run: fetch raw posts for a keyword,
// enrich each with sentiment and embedding, deduplicate the whole batch in
// one existence query, and persist the new subset in one bulk write.
// Concurrent runs for different keywords do not interfere: dedup and
// persistence are scoped by record ID, not by keyword.
type Service struct {
	source  collector.Source
	embed   embedder.Client
	posts   PostStore
	vectors EmbeddingStore
	bus     eventbus.Publisher
	cfg     config.IngestConfig
}

// NewService wires a pipeline. embed, vectors and bus may be nil: a nil
// embedder degrades every run to embedding-less records, a nil side table
// or bus just skips those best-effort steps.
func NewService(source collector.Source, embed embedder.Client, posts PostStore, vectors EmbeddingStore, bus eventbus.Publisher, cfg config.IngestConfig) *Service {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 4
	}
	if cfg.FetchTimeoutSeconds <= 0 {
		cfg.FetchTimeoutSeconds = 30
	}
	if cfg.StoreTimeoutSeconds <= 0 {
		cfg.StoreTimeoutSeconds = 10
	}
	return &Service{
		source:  source,
		embed:   embed,
		posts:   posts,
		vectors: vectors,
		bus:     bus,
		cfg:     cfg,
	}
}

// Ingest runs the full pipeline for one keyword and returns the counts.
// It is idempotent: a second run against an unchanged source inserts
// nothing, because every candidate ID already exists.
func (s *Service) Ingest(ctx context.Context, keyword string, limit int) (IngestResult, error) {
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}

	// Step 1: fetch. A failed or timed-out fetch aborts the run; we never
	// enrich an incomplete batch.
	fetchCtx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.FetchTimeoutSeconds)*time.Second)
	raw, err := s.source.Search(fetchCtx, keyword, limit)
	cancel()
	if err != nil {
		return IngestResult{}, fmt.Errorf("%w: %s search for %q: %v", ErrSourceUnavailable, s.source.Name(), keyword, err)
	}
	if len(raw) == 0 {
		logger.Log.Infof("no posts found for keyword %q on %s", keyword, s.source.Name())
		return IngestResult{}, nil
	}

	// Step 2: enrich every post before touching the store.
	posts := s.buildPosts(keyword, raw)
	s.enrich(ctx, posts)

	// Step 3: one existence query for the whole batch.
	ids := make([]string, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
	}
	storeCtx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.StoreTimeoutSeconds)*time.Second)
	freshIDs, err := s.posts.FilterNew(storeCtx, ids)
	cancel()
	if err != nil {
		return IngestResult{}, fmt.Errorf("%w: existence check: %v", ErrStoreUnavailable, err)
	}

	fresh := make(map[string]struct{}, len(freshIDs))
	for _, id := range freshIDs {
		fresh[id] = struct{}{}
	}
	toInsert := make([]models.Post, 0, len(freshIDs))
	for _, p := range posts {
		if _, ok := fresh[p.ID]; ok {
			toInsert = append(toInsert, p)
		}
	}

	result := IngestResult{
		Fetched:  len(posts),
		Inserted: len(toInsert),
		Skipped:  len(posts) - len(toInsert),
	}

	// Step 4: one bulk insert of the new subset.
	if len(toInsert) > 0 {
		storeCtx, cancel = context.WithTimeout(ctx, time.Duration(s.cfg.StoreTimeoutSeconds)*time.Second)
		err = s.posts.InsertMany(storeCtx, toInsert)
		cancel()
		if err != nil {
			return IngestResult{}, fmt.Errorf("%w: bulk insert: %v", ErrStoreUnavailable, err)
		}

		s.upsertVectors(ctx, toInsert)
	}

	s.publishCompleted(ctx, keyword, result)

	logger.InfoWithFields("ingest complete", logger.Fields{
		"keyword":  keyword,
		"source":   s.source.Name(),
		"fetched":  result.Fetched,
		"inserted": result.Inserted,
		"skipped":  result.Skipped,
	})
	return result, nil
}

func (s *Service) buildPosts(keyword string, raw []collector.RawPost) []models.Post {
	source := s.source.Name()
	posts := make([]models.Post, 0, len(raw))
	for _, r := range raw {
		posts = append(posts, models.Post{
			ID:        models.PostID(source, r.SourceID),
			Source:    source,
			SourceID:  r.SourceID,
			Keyword:   keyword,
			Title:     r.Title,
			Body:      r.Body,
			Author:    r.Author,
			URL:       r.URL,
			Score:     r.Score,
			CreatedAt: r.CreatedAt.UTC(),
			Metadata: models.PostMetadata{
				Subreddit:   r.Subreddit,
				NumComments: r.NumComments,
				FeedTitle:   r.FeedTitle,
			},
		})
	}
	return posts
}

// enrich computes sentiment and embedding for every post, in parallel,
// bounded by the configured concurrency. One post's failure never blocks or
// invalidates another's. When the embedding model is unavailable the whole
// batch proceeds embedding-less; that is a documented degraded-mode write.
func (s *Service) enrich(ctx context.Context, posts []models.Post) {
	var modelDown atomic.Bool
	if s.embed == nil {
		modelDown.Store(true)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.Concurrency)
	for i := range posts {
		g.Go(func() error {
			p := &posts[i]
			text := p.FullText()

			score, label := sentiment.Score(text)
			p.SentimentScore = &score
			p.SentimentLabel = label

			if modelDown.Load() {
				return nil
			}
			vectors, err := s.embed.Embed(gctx, []string{text})
			if err != nil {
				if errors.Is(err, embedder.ErrModelUnavailable) {
					if modelDown.CompareAndSwap(false, true) {
						logger.WarnWithFields("embedding model unavailable, batch proceeds embedding-less", logger.Fields{
							"error": err.Error(),
						})
					}
				} else {
					logger.Log.Warnf("embedding failed for %s: %v", p.ID, err)
				}
				return nil
			}
			p.Embedding = vectors[0]
			return nil
		})
	}
	// Workers swallow their own failures; Wait only observes ctx cancel.
	_ = g.Wait()
}

// upsertVectors writes the embeddings side table. Best effort: a failure is
// logged and does not change the ingest result.
func (s *Service) upsertVectors(ctx context.Context, inserted []models.Post) {
	if s.vectors == nil {
		return
	}
	rows := make([]models.PostEmbedding, 0, len(inserted))
	for _, p := range inserted {
		if len(p.Embedding) == 0 {
			continue
		}
		rows = append(rows, models.PostEmbedding{PostID: p.ID, Vector: p.Embedding})
	}
	if len(rows) == 0 {
		return
	}

	storeCtx, cancel := context.WithTimeout(ctx, time.Duration(s.cfg.StoreTimeoutSeconds)*time.Second)
	defer cancel()
	if err := s.vectors.UpsertMany(storeCtx, rows); err != nil {
		logger.Log.Warnf("embeddings side table upsert failed: %v", err)
	}
}

// publishCompleted emits the ingest event for the external alert monitor.
// Best effort: publish failure never fails the run.
func (s *Service) publishCompleted(ctx context.Context, keyword string, result IngestResult) {
	if s.bus == nil {
		return
	}
	evt, err := eventbus.NewJSONEvent(events.IngestCompletedEvent{
		BaseEvent: events.BaseEvent{
			Type:      events.IngestCompleted,
			Timestamp: time.Now().UTC(),
			Source:    s.source.Name(),
		},
		Keyword:  keyword,
		Fetched:  result.Fetched,
		Inserted: result.Inserted,
		Skipped:  result.Skipped,
	})
	if err != nil {
		logger.Log.Warnf("ingest event build failed: %v", err)
		return
	}
	if err := s.bus.Publish(ctx, eventbus.TopicIngestEvents.Base(), evt); err != nil {
		logger.Log.Warnf("ingest event publish failed: %v", err)
	}
}
