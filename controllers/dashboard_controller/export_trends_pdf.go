package dashboard_controller

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/firhaanali/dashboard-dbusana-sub007/config"
	"github.com/firhaanali/dashboard-dbusana-sub007/models"
	"github.com/firhaanali/dashboard-dbusana-sub007/services"
	"github.com/gin-gonic/gin"
)

// ExportTrendsPDF godoc
// @Summary Download monthly trends report PDF
// @Description Generates the monthly KPI trend comparison as a downloadable PDF
// @Tags Dashboard
// @Produce octet-stream
// @Success 200 "PDF file"
// @Failure 500 {object} models.ApiResponse
// @Router /dashboard/monthly-trends/export-pdf [get]
func (ctl *Controller) ExportTrendsPDF(c *gin.Context) {
	log.Printf("[dashboard.trends-export] start")

	ctx, cancel := config.WithCustomTimeout(20 * time.Second)
	defer cancel()

	data, _, err := ctl.computeMonthlyTrends(ctx)
	if err != nil {
		log.Printf("[dashboard.trends-export] ERROR compute failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to compute monthly trends", err))
		return
	}

	buf, err := services.BuildMonthlyTrendsPDF(data)
	if err != nil {
		log.Printf("[dashboard.trends-export] ERROR pdf generation failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to generate report PDF", err))
		return
	}

	filename := fmt.Sprintf("monthly-trends-%s.pdf", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())

	log.Printf("[dashboard.trends-export] respond 200 bytes=%d", buf.Len())
}
