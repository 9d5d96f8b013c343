package services

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"trenddit/dto"
	"trenddit/models"
	"trenddit/repositories"
)

// PostService encapsulates read-side logic for the live feed and export
type PostService struct {
	repo *repositories.PostRepository
}

func NewPostService(repo *repositories.PostRepository) *PostService {
	return &PostService{repo: repo}
}

type ListPostsInput struct {
	Keyword   string
	Sources   []string
	Timeframe string
	Page      int
	PageSize  int
}

// List returns one page of the live feed, newest first, with the total match
// count for pagination.
func (s *PostService) List(ctx context.Context, in ListPostsInput) (*dto.PaginationPostDTO, error) {
	window, err := ParseTimeframe(in.Timeframe)
	if err != nil {
		return nil, err
	}

	page := in.Page
	if page < 1 {
		page = 1
	}
	pageSize := in.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	opt := repositories.ListPostsOptions{
		Keyword: in.Keyword,
		Sources: in.Sources,
		Since:   time.Now().UTC().Add(-window),
		Offset:  (page - 1) * pageSize,
		Limit:   pageSize,
	}

	items, err := s.repo.List(ctx, opt)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, opt)
	if err != nil {
		return nil, err
	}

	return &dto.PaginationPostDTO{
		Data:     dto.NewPostDTOs(items),
		Page:     page,
		PageSize: pageSize,
		Total:    total,
	}, nil
}

// exportColumns is the CSV header for feed exports: every stored Post
// field, one row per post.
var exportColumns = []string{
	"id", "source", "source_id", "keyword", "title", "body", "author", "url",
	"score", "subreddit", "num_comments", "created_at", "inserted_at",
	"sentiment_score", "sentiment_label", "embedding",
}

// ExportCSV streams every post matching the predicate to w as CSV, newest
// first, up to the window read cap.
func (s *PostService) ExportCSV(ctx context.Context, w io.Writer, in ListPostsInput) error {
	window, err := ParseTimeframe(in.Timeframe)
	if err != nil {
		return err
	}

	posts, err := s.repo.List(ctx, repositories.ListPostsOptions{
		Keyword: in.Keyword,
		Sources: in.Sources,
		Since:   time.Now().UTC().Add(-window),
	})
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportColumns); err != nil {
		return err
	}
	for _, p := range posts {
		if err := cw.Write(exportRow(p)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func exportRow(p models.Post) []string {
	score := ""
	if p.SentimentScore != nil {
		score = fmt.Sprintf("%.4f", *p.SentimentScore)
	}
	embedding := ""
	if len(p.Embedding) > 0 {
		// JSON array keeps the vector a single CSV cell
		if b, err := json.Marshal(p.Embedding); err == nil {
			embedding = string(b)
		}
	}
	insertedAt := ""
	if !p.InsertedAt.IsZero() {
		insertedAt = p.InsertedAt.UTC().Format(time.RFC3339)
	}
	return []string{
		p.ID,
		p.Source,
		p.SourceID,
		p.Keyword,
		p.Title,
		p.Body,
		p.Author,
		p.URL,
		strconv.Itoa(p.Score),
		p.Metadata.SubredditOrEmpty(),
		strconv.Itoa(p.Metadata.NumComments),
		p.CreatedAt.UTC().Format(time.RFC3339),
		insertedAt,
		score,
		p.SentimentLabel,
		embedding,
	}
}
