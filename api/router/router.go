package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.mongodb.org/mongo-driver/bson"

	"trenddit/api/handlers"
	"trenddit/api/middleware"
	"trenddit/collector"
	"trenddit/config"
	"trenddit/db"
	_ "trenddit/docs"
	"trenddit/eventbus"
	"trenddit/ingestion"
	"trenddit/internal/logger"
	"trenddit/models"
	"trenddit/nlp/embedder"
	"trenddit/repositories"
	"trenddit/services"
)

func New() *gin.Engine {
	cfg := config.GetConfig()

	r := gin.Default()
	r.Use(middleware.RequestLoggingMiddleware())
	r.Use(corsMiddleware(cfg.Server.CORSOrigins))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		// Try ping MongoDB
		if err := db.Database().RunCommand(context.Background(), bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	postsRepo := repositories.NewPostRepository(db.Database())
	alertsRepo := repositories.NewAlertRepository(db.Database())
	queriesRepo := repositories.NewQueryRepository(db.Database())
	vectorsRepo := repositories.NewEmbeddingRepository(db.Database())

	postSvc := services.NewPostService(postsRepo)
	aggregateSvc := services.NewAggregateService(postsRepo)
	alertSvc := services.NewAlertService(alertsRepo)
	querySvc := services.NewQueryService(queriesRepo)
	ingestSvc := services.NewIngestService(buildPipelines(cfg, postsRepo, vectorsRepo))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.POST("/ingest", handlers.IngestHandler(ingestSvc))
		api.GET("/posts", handlers.ListPostsHandler(postSvc))
		api.GET("/posts/export", handlers.ExportPostsHandler(postSvc))
		api.GET("/aggregate", handlers.AggregateHandler(aggregateSvc))
		api.GET("/alerts", handlers.ListAlertsHandler(alertSvc))
		api.POST("/queries", handlers.SaveQueryHandler(querySvc))
		api.GET("/queries", handlers.ListQueriesHandler(querySvc))
	}

	return r
}

// buildPipelines wires one ingestion pipeline per configured source
// connector. Embedder and event bus are optional: a missing API key or
// broker address degrades runs instead of failing startup.
func buildPipelines(cfg config.AppConfig, posts *repositories.PostRepository, vectors *repositories.EmbeddingRepository) map[string]*ingestion.Service {
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
		}
	}

	pipelines := make(map[string]*ingestion.Service)
	for _, name := range []string{models.SourceReddit, models.SourceRSS} {
		source, err := collector.ForName(name, cfg)
		if err != nil {
			continue
		}
		pipelines[name] = ingestion.NewService(source, embed, posts, vectors, bus, cfg.Ingest)
	}
	return pipelines
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	opts := cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}
	if len(origins) > 0 {
		opts.AllowedOrigins = origins
	} else {
		opts.AllowedOrigins = []string{"*"}
	}
	handler := cors.New(opts)

	return func(c *gin.Context) {
		handler.HandlerFunc(c.Writer, c.Request)
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
