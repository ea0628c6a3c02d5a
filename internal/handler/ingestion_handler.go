package handler

import (
	"net/http"

	"gamerank/backend/internal/catalog"
	"gamerank/backend/internal/database"
	"gamerank/backend/internal/ingest"

	"github.com/gin-gonic/gin"
)

// Ingestor is set at startup. Catalog listings trigger a staleness-gated
// refresh through it so the catalog populates itself on first use.
var Ingestor *ingest.Service

// RunIngestion godoc
// @Summary      Run catalog ingestion
// @Description  Fetches every configured feed and inserts new games. A failing feed is reported but does not stop the others.
// @Tags         admin-ingestion
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array}  ingest.Report
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse "Admin access required"
// @Router       /admin/ingestion/run [post]
func RunIngestion(c *gin.Context) {
	if Ingestor == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Ingestion not configured"})
		return
	}

	reports := Ingestor.Run(c.Request.Context())
	c.JSON(http.StatusOK, reports)
}

// GetSiteMetrics godoc
// @Summary      Get site metrics
// @Description  Returns the catalog-wide totals, plus the caller's own counts when signed in.
// @Tags         metrics
// @Produce      json
// @Success      200 {object} catalog.SiteMetrics
// @Router       /metrics/site [get]
func GetSiteMetrics(c *gin.Context) {
	viewerID := uint(0)
	if id, exists := c.Get("userID"); exists {
		viewerID = id.(uint)
	}

	metrics, err := catalog.Metrics(database.DB, viewerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute metrics"})
		return
	}

	c.JSON(http.StatusOK, metrics)
}
