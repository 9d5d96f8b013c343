package main

import (
	"context"
	"log"
	"net/http"

	"trenddit/api/router"
	"trenddit/config"
	"trenddit/db"
	"trenddit/internal/logger"
)

// @title           Trenddit API
// @version         1.0
// @description     Social media trend analysis: ingestion, sentiment and topic aggregation
// @BasePath        /api/v1
func main() {
	config.InitApp()
	logger.Init(config.GetConfig().Logging.Level)

	if err := db.Init(context.Background()); err != nil {
		log.Fatal(err)
	}
	r := router.New()

	addr := config.GetConfig().Server.Addr
	logger.Log.Infof("api listening on %s", addr)
	if err := r.Run(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
