package handlers

import (
	"blog-api/helper"
	"blog-api/models"
	"blog-api/services"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthService services.HealthService
	Helper        *helper.HTTPHelper
}

func NewHealthHandler(healthService services.HealthService, h *helper.HTTPHelper) *HealthHandler {
	return &HealthHandler{healthService: healthService, Helper: h}
}

// Health reports service health
// @Summary Database connectivity, uptime and memory usage
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthReport
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	h.Helper.SendSuccess(c, h.healthService.Check(c.Request.Context()))
}

// Root is the API banner
// @Summary API banner with links to the docs and health check
// @Tags Health
// @Produce json
// @Success 200 {object} models.RootResponse
// @Router / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	h.Helper.SendSuccess(c, models.RootResponse{
		Message:       "Blog API is running!",
		Documentation: "/swagger/index.html",
		Health:        "/health",
	})
}
