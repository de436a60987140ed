package handlers

import (
	"snailmail-delivery/internal/api/dto"

	"github.com/gin-gonic/gin"
)

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, dto.ErrorResponse{Success: false, Error: msg})
}
