package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthController answers liveness checks
type HealthController struct{}

// NewHealthController creates a HealthController
func NewHealthController() *HealthController {
	return &HealthController{}
}

// Check reports that the service is up
func (c *HealthController) Check(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
