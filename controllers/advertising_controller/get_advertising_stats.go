package advertising_controller

import (
	"log"
	"math"
	"net/http"

	"github.com/firhaanali/dashboard-dbusana-sub007/config"
	"github.com/firhaanali/dashboard-dbusana-sub007/models"
	"github.com/gin-gonic/gin"
)

// GetAdvertisingStats godoc
// @Summary Get advertising stats (CMS)
// @Description Returns all-time advertising spend plus current month spend and % change vs last month, scoped by settlement time.
// @Tags Admin - Advertising
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.AdvertisingStatsResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /advertising/stats [get]
func (ctl *Controller) GetAdvertisingStats(c *gin.Context) {
	log.Printf("[admin.advertising.stats] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	q := `
		WITH
		all_time AS (
			SELECT
				COUNT(*)::int AS total_settlements,
				COALESCE(SUM(settlement_amount), 0)::float8 AS total_spend
			FROM advertising_settlement
		),
		cur AS (
			SELECT COALESCE(SUM(settlement_amount), 0)::float8 AS spend
			FROM advertising_settlement
			WHERE order_settled_time >= date_trunc('month', NOW())
			  AND order_settled_time <  date_trunc('month', NOW()) + INTERVAL '1 month'
		),
		prev AS (
			SELECT COALESCE(SUM(settlement_amount), 0)::float8 AS spend
			FROM advertising_settlement
			WHERE order_settled_time >= date_trunc('month', NOW()) - INTERVAL '1 month'
			  AND order_settled_time <  date_trunc('month', NOW())
		)
		SELECT
			all_time.total_settlements,
			all_time.total_spend,
			cur.spend,
			prev.spend
		FROM all_time, cur, prev;
	`

	var res models.AdvertisingStatsResponse
	err := ctl.db.WithContext(ctx).Raw(q).Row().Scan(
		&res.TotalSettlements,
		&res.TotalSpend,
		&res.CurrentMonthSpend,
		&res.LastMonthSpend,
	)
	if err != nil {
		log.Printf("[admin.advertising.stats] ERROR query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to fetch advertising stats", err))
		return
	}

	if res.LastMonthSpend > 0 {
		v := ((res.CurrentMonthSpend - res.LastMonthSpend) / res.LastMonthSpend) * 100
		v = math.Round(v*10) / 10
		res.ChangePercentFromLastMonth = &v
	}

	log.Printf("[admin.advertising.stats] done total=%.2f cur=%.2f prev=%.2f",
		res.TotalSpend, res.CurrentMonthSpend, res.LastMonthSpend)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Advertising stats retrieved successfully", res))
}
