package routes

import (
	"github.com/gin-gonic/gin"

	handler "category-audit-backend/internal/handlers"
	"category-audit-backend/internal/services/audit"
)

func RegisterRoutes(r *gin.Engine, auditService *audit.Service) {
	auditHandler := handler.NewAuditHandler(auditService)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Model audit routes
	model := api.Group("/models/:groupId")
	model.GET("/instances", auditHandler.GetInstances)
	model.GET("/categories", auditHandler.GetCategories)
	model.POST("/summary", auditHandler.GetSummary)
	model.POST("/data-summary", auditHandler.GetDataSummary)
	model.POST("/report", auditHandler.GetReport)
	model.POST("/viewer", auditHandler.GetViewerPage)
}
