package handlers

import (
	"net/http"
	"snailmail-delivery/internal/api/dto"

	"github.com/gin-gonic/gin"
)

// Health provides a minimal liveness check endpoint.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Success: true, Status: "ok"})
}
