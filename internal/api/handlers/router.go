package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter registers the ledger routes on a new gin engine.
func NewRouter(h *LedgerHandler, middleware ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(middleware...)

	apiV1 := router.Group("/api/v1")
	{
		// Sem Middleware -- Gateway lida com isso
		apiV1.POST("/upload", h.HandleUpload)
		apiV1.GET("/documents/:id", h.HandleGetDocument)
		apiV1.PUT("/documents/:id", h.HandleUpdateDocument)
		apiV1.DELETE("/documents/:company_id/sheet/:index", h.HandleDeleteSheet)
		apiV1.POST("/export", h.HandleExport)
		apiV1.POST("/export/csv", h.HandleExportCSV)
		apiV1.POST("/export/xlsx", h.HandleExportWorkbook)
		apiV1.POST("/import/workbook", h.HandleImportWorkbook)
		apiV1.GET("/registry/codes", h.HandleCodes)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "service": "ledger-service"})
	})
	return router
}
