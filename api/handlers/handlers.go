package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"trenddit/dto"
	"trenddit/ingestion"
	"trenddit/internal/logger"
	"trenddit/services"
)

// statusFor maps ingestion failure kinds to HTTP status codes.
func statusFor(err error) int {
	switch ingestion.Kind(err) {
	case ingestion.KindSourceUnavailable:
		return http.StatusBadGateway
	case ingestion.KindStoreUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// IngestHandler godoc
// @Summary      Trigger an ingestion run
// @Description  Fetch, enrich and store posts matching the keyword
// @Tags         ingest
// @Accept       json
// @Param        request  body  dto.IngestRequest  true  "Keyword and optional limit"
// @Produce      json
// @Success      200  {object}  dto.IngestResultDTO
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /ingest [post]
func IngestHandler(svc *services.IngestService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.IngestRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		result, err := svc.Run(c.Request.Context(), in)
		if err != nil {
			if errors.Is(err, services.ErrUnknownSource) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(statusFor(err), gin.H{"error": err.Error(), "kind": ingestion.Kind(err)})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// ListPostsHandler godoc
// @Summary      List posts
// @Description  Live feed of stored posts with filters and pagination
// @Tags         posts
// @Param        keyword    query  string    false  "Keyword (substring match on title, body or stored keyword)"
// @Param        sources    query  []string  false  "Sources (OR match)"
// @Param        timeframe  query  string    false  "Window: 1h, 6h, 24h, 7d or 30d"
// @Param        page       query  int       false  "Page number (1-based)"
// @Param        page_size  query  int       false  "Page size (<=100)"
// @Produce      json
// @Success      200  {object}  dto.PaginationPostDTO
// @Router       /posts [get]
func ListPostsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.ListPostsInput
		in.Keyword = c.Query("keyword")
		in.Sources = c.QueryArray("sources")
		in.Timeframe = c.Query("timeframe")
		in.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
		in.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))

		items, err := svc.List(c.Request.Context(), in)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// ExportPostsHandler godoc
// @Summary      Export posts as CSV
// @Description  Stream the matching feed window as a CSV download
// @Tags         posts
// @Param        keyword    query  string    false  "Keyword"
// @Param        sources    query  []string  false  "Sources (OR match)"
// @Param        timeframe  query  string    false  "Window: 1h, 6h, 24h, 7d or 30d"
// @Produce      text/csv
// @Success      200
// @Router       /posts/export [get]
func ExportPostsHandler(svc *services.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		in := services.ListPostsInput{
			Keyword:   c.Query("keyword"),
			Sources:   c.QueryArray("sources"),
			Timeframe: c.Query("timeframe"),
		}

		// Validate before any CSV bytes go out, so bad input still gets a
		// clean JSON 400.
		if _, err := services.ParseTimeframe(in.Timeframe); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.Header("Content-Type", "text/csv")
		c.Header("Content-Disposition", `attachment; filename="posts.csv"`)
		if err := svc.ExportCSV(c.Request.Context(), c.Writer, in); err != nil {
			// Headers and possibly rows are already on the wire; a JSON
			// body here would corrupt the download. Log and cut the stream.
			logger.Log.Errorf("csv export failed: %v", err)
			c.Abort()
			return
		}
	}
}

// AggregateHandler godoc
// @Summary      Aggregate a query window
// @Description  Sentiment timeline, top n-grams, topic clusters and KPIs for one keyword window
// @Tags         aggregate
// @Param        keyword    query  string    false  "Keyword"
// @Param        sources    query  []string  false  "Sources (OR match)"
// @Param        timeframe  query  string    false  "Window: 1h, 6h, 24h, 7d or 30d"
// @Param        top_terms  query  int       false  "Number of n-grams to return (default 30)"
// @Produce      json
// @Success      200  {object}  dto.AggregateDTO
// @Router       /aggregate [get]
func AggregateHandler(svc *services.AggregateService) gin.HandlerFunc {
	return func(c *gin.Context) {
		in := services.AggregateInput{
			Keyword:   c.Query("keyword"),
			Sources:   c.QueryArray("sources"),
			Timeframe: c.Query("timeframe"),
		}
		in.TopTerms, _ = strconv.Atoi(c.DefaultQuery("top_terms", "30"))

		out, err := svc.Aggregate(c.Request.Context(), in)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// ListAlertsHandler godoc
// @Summary      List recent alerts
// @Tags         alerts
// @Param        limit  query  int  false  "Number of alerts (default 10)"
// @Produce      json
// @Success      200  {array}  dto.AlertDTO
// @Router       /alerts [get]
func ListAlertsHandler(svc *services.AlertService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

		alerts, err := svc.Recent(c.Request.Context(), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, alerts)
	}
}

// SaveQueryHandler godoc
// @Summary      Save a search
// @Tags         queries
// @Accept       json
// @Param        request  body  dto.SaveQueryRequest  true  "Keyword and sources"
// @Produce      json
// @Success      201  {object}  dto.QueryDTO
// @Failure      400  {object}  map[string]string
// @Router       /queries [post]
func SaveQueryHandler(svc *services.QueryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in dto.SaveQueryRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		saved, err := svc.Save(c.Request.Context(), in)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, saved)
	}
}

// ListQueriesHandler godoc
// @Summary      List saved searches
// @Tags         queries
// @Produce      json
// @Success      200  {array}  dto.QueryDTO
// @Router       /queries [get]
func ListQueriesHandler(svc *services.QueryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		queries, err := svc.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, queries)
	}
}
