package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"trenddit/collector"
	"trenddit/config"
	"trenddit/db"
	"trenddit/eventbus"
	"trenddit/ingestion"
	"trenddit/internal/logger"
	"trenddit/models"
	"trenddit/nlp/embedder"
	"trenddit/repositories"
)

// One-shot collector: fetch, enrich and store posts for a keyword, then exit.
func main() {
	keyword := flag.String("keyword", "", "keyword to search for (required)")
	sourceName := flag.String("source", models.SourceReddit, "source connector: reddit or rss")
	limit := flag.Int("limit", 0, "fetch size, 0 means the configured default")
	flag.Parse()

	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	if *keyword == "" {
		logger.Log.Error("missing -keyword")
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Log.Info("received shutdown signal, cancelling run...")
		cancel()
	}()

	if err := db.Init(ctx); err != nil {
		logger.Log.Errorf("failed to connect to mongo: %v", err)
		os.Exit(1)
	}

	source, err := collector.ForName(*sourceName, cfg)
	if err != nil {
		logger.Log.Errorf("%v", err)
		os.Exit(2)
	}

	embed, err := embedder.Shared()
	if err != nil {
		logger.Log.Warnf("embedder unavailable, ingesting without embeddings: %v", err)
		embed = nil
	}

	var bus eventbus.Publisher
	if cfg.KafkaBrokers != "" {
		kafkaBus, err := eventbus.NewKafkaEventBus(cfg.KafkaBrokers)
		if err != nil {
			logger.Log.Warnf("event bus unavailable, skipping ingest events: %v", err)
		} else {
			bus = kafkaBus
			defer kafkaBus.Close()
		}
	}

	database := db.Database()
	pipeline := ingestion.NewService(
		source,
		embed,
		repositories.NewPostRepository(database),
		repositories.NewEmbeddingRepository(database),
		bus,
		cfg.Ingest,
	)

	result, err := pipeline.Ingest(ctx, *keyword, *limit)
	if err != nil {
		logger.ErrorWithFields("ingestion run failed", logger.Fields{
			"keyword": *keyword,
			"source":  *sourceName,
			"kind":    ingestion.Kind(err),
			"error":   err.Error(),
		})
		os.Exit(1)
	}

	logger.InfoWithFields("ingestion run finished", logger.Fields{
		"keyword":  *keyword,
		"source":   *sourceName,
		"fetched":  result.Fetched,
		"inserted": result.Inserted,
		"skipped":  result.Skipped,
	})
}
