package dashboard_controller

import (
	"log"
	"net/http"

	"github.com/firhaanali/dashboard-dbusana-sub007/config"
	"github.com/firhaanali/dashboard-dbusana-sub007/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// GetTrendsSummary godoc
// @Summary Get lightweight trends summary
// @Description Fast single-card indicator: revenue and gross profit change only, skipping the full KPI basket and stock snapshot.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.TrendsSummaryData}
// @Failure 500 {object} models.ApiResponse
// @Router /dashboard/monthly-trends/summary [get]
func (ctl *Controller) GetTrendsSummary(c *gin.Context) {
	log.Printf("[dashboard.trends-summary] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	latest, ok, err := ctl.src.LatestSaleTime(ctx)
	if err != nil {
		log.Printf("[dashboard.trends-summary] ERROR latest sale lookup failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to compute trends summary", err))
		return
	}
	if !ok {
		log.Printf("[dashboard.trends-summary] respond 200 no sales data")
		c.JSON(http.StatusOK, models.SuccessResponse(c, "No sales data available", models.TrendsSummaryData{
			CurrentMonth:  "No Data",
			PreviousMonth: "No Data",
		}))
		return
	}

	current, previous := resolvePeriods(latest)

	var currentAgg, previousAgg salesAggregate
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		currentAgg, err = ctl.src.SalesAggregate(gctx, current.start, current.end)
		return err
	})
	g.Go(func() error {
		var err error
		previousAgg, err = ctl.src.SalesAggregate(gctx, previous.start, previous.end)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Printf("[dashboard.trends-summary] ERROR aggregate failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to compute trends summary", err))
		return
	}

	currentFin := periodFinancials(currentAgg)
	previousFin := periodFinancials(previousAgg)

	data := models.TrendsSummaryData{
		CurrentMonth:    current.label,
		PreviousMonth:   previous.label,
		RevenueChange:   computeTrend(currentFin.Revenue, previousFin.Revenue, false),
		ProfitChange:    computeTrend(currentFin.Profit, previousFin.Profit, false),
		CurrentMetrics:  currentFin,
		PreviousMetrics: previousFin,
	}

	log.Printf("[dashboard.trends-summary] respond 200 current=%q revenue=%.2f profit=%.2f",
		data.CurrentMonth, currentFin.Revenue, currentFin.Profit)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Trends summary computed successfully", data))
}

func periodFinancials(agg salesAggregate) models.PeriodFinancials {
	return models.PeriodFinancials{
		Revenue: agg.TotalRevenue,
		Profit:  agg.SettlementAmount - agg.TotalHPP,
	}
}
