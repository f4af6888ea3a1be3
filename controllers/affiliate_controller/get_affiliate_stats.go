package affiliate_controller

import (
	"log"
	"net/http"

	"github.com/firhaanali/dashboard-dbusana-sub007/config"
	"github.com/firhaanali/dashboard-dbusana-sub007/models"
	"github.com/gin-gonic/gin"
)

// GetAffiliateStats godoc
// @Summary Get affiliate stats (CMS)
// @Description Returns all-time campaign counts, endorse fees, attributed sales, commission and ROI.
// @Tags Admin - Affiliate
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.AffiliateStatsResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /affiliate/stats [get]
func (ctl *Controller) GetAffiliateStats(c *gin.Context) {
	log.Printf("[admin.affiliate.stats] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var row struct {
		TotalCampaigns  int
		TotalEndorseFee float64
		TotalSales      float64
		TotalCommission float64
	}
	if err := ctl.db.WithContext(ctx).
		Raw(`
			SELECT
				COUNT(*)::int AS total_campaigns,
				COALESCE(SUM(endorse_fee), 0)::float8     AS total_endorse_fee,
				COALESCE(SUM(actual_sales), 0)::float8    AS total_sales,
				COALESCE(SUM(paid_commission), 0)::float8 AS total_commission
			FROM affiliate_endorsements
		`).
		Scan(&row).Error; err != nil {
		log.Printf("[admin.affiliate.stats] ERROR query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to fetch affiliate stats", err))
		return
	}

	roi := 0.0
	if row.TotalEndorseFee > 0 {
		roi = row.TotalSales / row.TotalEndorseFee
	}

	res := models.AffiliateStatsResponse{
		TotalCampaigns:  row.TotalCampaigns,
		TotalEndorseFee: row.TotalEndorseFee,
		TotalSales:      row.TotalSales,
		TotalCommission: row.TotalCommission,
		ROI:             roi,
	}

	log.Printf("[admin.affiliate.stats] done campaigns=%d fee=%.2f sales=%.2f roi=%.2f",
		res.TotalCampaigns, res.TotalEndorseFee, res.TotalSales, res.ROI)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Affiliate stats retrieved successfully", res))
}
