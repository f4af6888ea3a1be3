package sales_controller

import (
	"log"
	"math"
	"net/http"

	"github.com/firhaanali/dashboard-dbusana-sub007/config"
	"github.com/firhaanali/dashboard-dbusana-sub007/models"
	"github.com/gin-gonic/gin"
)

// GetSalesStats godoc
// @Summary Get sales stats (CMS)
// @Description Returns all-time distinct order count, quantity and revenue, plus current month order total and % change vs last month.
// @Tags Admin - Sales
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.SalesStatsResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /sales/stats [get]
func (ctl *Controller) GetSalesStats(c *gin.Context) {
	log.Printf("[admin.sales.stats] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// All-time totals, but month-over-month change from monthly distinct-order counts
	q := `
		WITH
		all_time AS (
			SELECT
				COUNT(DISTINCT order_id)::int        AS total_orders,
				COALESCE(SUM(quantity), 0)::int      AS total_quantity,
				COALESCE(SUM(total_revenue), 0)::float8 AS total_revenue
			FROM sales_data
		),
		cur AS (
			SELECT COUNT(DISTINCT order_id)::int AS total
			FROM sales_data
			WHERE created_time >= date_trunc('month', NOW())
			  AND created_time <  date_trunc('month', NOW()) + INTERVAL '1 month'
		),
		prev AS (
			SELECT COUNT(DISTINCT order_id)::int AS total
			FROM sales_data
			WHERE created_time >= date_trunc('month', NOW()) - INTERVAL '1 month'
			  AND created_time <  date_trunc('month', NOW())
		)
		SELECT
			all_time.total_orders,
			all_time.total_quantity,
			all_time.total_revenue,
			cur.total,
			prev.total
		FROM all_time, cur, prev;
	`

	var totalOrders, totalQuantity, curTotal, prevTotal int
	var totalRevenue float64

	err := ctl.db.WithContext(ctx).Raw(q).Row().Scan(
		&totalOrders,
		&totalQuantity,
		&totalRevenue,
		&curTotal,
		&prevTotal,
	)
	if err != nil {
		log.Printf("[admin.sales.stats] ERROR query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to fetch sales stats", err))
		return
	}

	var changePct *float64
	if prevTotal > 0 {
		v := (float64(curTotal-prevTotal) / float64(prevTotal)) * 100
		v = math.Round(v*10) / 10
		changePct = &v
	}

	res := models.SalesStatsResponse{
		TotalOrders:                totalOrders,
		TotalQuantity:              totalQuantity,
		TotalRevenue:               totalRevenue,
		ChangePercentFromLastMonth: changePct,
		CurrentMonthOrders:         curTotal,
		LastMonthOrders:            prevTotal,
	}

	log.Printf("[admin.sales.stats] done totalOrders=%d cur=%d prev=%d changePct=%v", totalOrders, curTotal, prevTotal, changePct)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Sales stats retrieved successfully", res))
}
