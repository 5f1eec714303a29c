package main

import (
	"time"

	"github.com/binhbb2204/Translation-Hub/internal/events"
	"github.com/binhbb2204/Translation-Hub/internal/health"
	"github.com/binhbb2204/Translation-Hub/internal/rating"
	"github.com/binhbb2204/Translation-Hub/pkg/logger"
	"github.com/binhbb2204/Translation-Hub/pkg/metrics"
	"github.com/binhbb2204/Translation-Hub/pkg/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type routerDeps struct {
	ratings        *rating.Service
	broker         *events.Broker
	allowedOrigins []string
}

func newRouter(deps routerDeps) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(logger.WithContext("component", "http")),
		metrics.Middleware(),
	)

	config := cors.DefaultConfig()
	config.AllowOrigins = deps.allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader}
	config.ExposeHeaders = []string{"Content-Length", middleware.RequestIDHeader}
	config.MaxAge = 12 * time.Hour
	router.Use(cors.New(config))

	health.NewHandler(deps.broker).RegisterRoutes(router)
	router.GET("/metrics", metrics.NewHandler().Metrics)
	router.GET("/events", deps.broker.ServeSSE)

	rating.NewHandler(deps.ratings, deps.broker).RegisterRoutes(router)
	return router
}
