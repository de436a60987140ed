package api

import (
	"net/http"
	"snailmail-delivery/internal/api/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires the estimate endpoints with their dependencies.
// Handlers stay unaware of the concrete route store.
func NewRouter(estimator handlers.Estimator, log *zap.Logger) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(recoveryMiddleware(log))
	r.Use(requestIDMiddleware())
	r.Use(loggingMiddleware(log))

	// The browser front end runs on a different origin during development.
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", requestIDHeader}
	r.Use(cors.New(config))

	distance := &handlers.DistanceHandler{Estimator: estimator, Log: log}

	g := r.Group("/api/distance")
	g.POST("/calculate", distance.Calculate)
	g.POST("/calculate-all", distance.CalculateAll)
	g.GET("/health", handlers.Health)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "not found"})
	})

	return r
}
