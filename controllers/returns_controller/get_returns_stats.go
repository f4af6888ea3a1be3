package returns_controller

import (
	"log"
	"net/http"

	"github.com/firhaanali/dashboard-dbusana-sub007/config"
	"github.com/firhaanali/dashboard-dbusana-sub007/models"
	"github.com/gin-gonic/gin"
)

// GetReturnsStats godoc
// @Summary Get returns stats (CMS)
// @Description Returns all-time return/cancellation counts and amounts, plus current and last month return counts.
// @Tags Admin - Returns
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.ReturnsStatsResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /returns/stats [get]
func (ctl *Controller) GetReturnsStats(c *gin.Context) {
	log.Printf("[admin.returns.stats] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	q := `
		WITH
		all_time AS (
			SELECT
				COALESCE(SUM(CASE WHEN type = 'return' THEN 1 ELSE 0 END), 0)::int AS returns,
				COALESCE(SUM(CASE WHEN type = 'cancel' THEN 1 ELSE 0 END), 0)::int AS cancellations,
				COALESCE(SUM(returned_amount), 0)::float8 AS returned_amount,
				COALESCE(SUM(CASE WHEN restock_status = 'pending' THEN 1 ELSE 0 END), 0)::int AS pending_restock
			FROM returns_cancellations
		),
		cur AS (
			SELECT COUNT(*)::int AS total
			FROM returns_cancellations
			WHERE return_date >= date_trunc('month', NOW())
			  AND return_date <  date_trunc('month', NOW()) + INTERVAL '1 month'
		),
		prev AS (
			SELECT COUNT(*)::int AS total
			FROM returns_cancellations
			WHERE return_date >= date_trunc('month', NOW()) - INTERVAL '1 month'
			  AND return_date <  date_trunc('month', NOW())
		)
		SELECT
			all_time.returns,
			all_time.cancellations,
			all_time.returned_amount,
			all_time.pending_restock,
			cur.total,
			prev.total
		FROM all_time, cur, prev;
	`

	var res models.ReturnsStatsResponse
	err := ctl.db.WithContext(ctx).Raw(q).Row().Scan(
		&res.TotalReturns,
		&res.TotalCancellations,
		&res.TotalReturnedAmount,
		&res.PendingRestock,
		&res.CurrentMonthReturns,
		&res.LastMonthReturns,
	)
	if err != nil {
		log.Printf("[admin.returns.stats] ERROR query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to fetch returns stats", err))
		return
	}

	log.Printf("[admin.returns.stats] done returns=%d cancellations=%d cur=%d prev=%d",
		res.TotalReturns, res.TotalCancellations, res.CurrentMonthReturns, res.LastMonthReturns)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Returns stats retrieved successfully", res))
}
