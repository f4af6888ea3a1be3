package dashboard_controller

import (
	"context"
	"log"
	"net/http"

	"github.com/firhaanali/dashboard-dbusana-sub007/config"
	"github.com/firhaanali/dashboard-dbusana-sub007/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// GetMonthlyTrends godoc
// @Summary Get monthly KPI trends
// @Description Compares the latest populated data month against the prior month across the full KPI basket, with per-metric direction and improvement flags plus a stock snapshot.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.MonthlyTrendsData}
// @Failure 500 {object} models.ApiResponse
// @Router /dashboard/monthly-trends [get]
func (ctl *Controller) GetMonthlyTrends(c *gin.Context) {
	log.Printf("[dashboard.monthly-trends] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	data, hasData, err := ctl.computeMonthlyTrends(ctx)
	if err != nil {
		log.Printf("[dashboard.monthly-trends] ERROR compute failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to compute monthly trends", err))
		return
	}
	if !hasData {
		log.Printf("[dashboard.monthly-trends] respond 200 no sales data")
		c.JSON(http.StatusOK, models.SuccessResponse(c, "No sales data available", data))
		return
	}

	log.Printf("[dashboard.monthly-trends] respond 200 current=%q previous=%q kpis=%d improving=%d declining=%d",
		data.CurrentPeriod.Label, data.PreviousPeriod.Label,
		data.Summary.TotalKPIs, data.Summary.ImprovingKPIs, data.Summary.DecliningKPIs)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Monthly trends computed successfully", data))
}

// computeMonthlyTrends builds the full trends payload. hasData is false when
// the sales collection is empty, which is a well-formed neutral payload and
// not an error.
func (ctl *Controller) computeMonthlyTrends(ctx context.Context) (models.MonthlyTrendsData, bool, error) {
	latest, ok, err := ctl.src.LatestSaleTime(ctx)
	if err != nil {
		return models.MonthlyTrendsData{}, false, err
	}
	if !ok {
		return emptyTrendsData(), false, nil
	}

	current, previous := resolvePeriods(latest)

	var (
		currentSet  models.MetricSet
		previousSet models.MetricSet
		stock       models.StockSnapshot
	)

	// The two periods and the stock snapshot target disjoint data.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		currentSet, err = collectMetrics(gctx, ctl.src, current)
		return err
	})
	g.Go(func() error {
		var err error
		previousSet, err = collectMetrics(gctx, ctl.src, previous)
		return err
	})
	g.Go(func() error {
		var err error
		stock, err = ctl.src.StockSnapshot(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.MonthlyTrendsData{}, false, err
	}

	trends := buildTrends(currentSet, previousSet)

	return models.MonthlyTrendsData{
		CurrentPeriod:  periodPayload(current, currentSet),
		PreviousPeriod: periodPayload(previous, previousSet),
		StockMetrics:   &stock,
		Trends:         trends,
		Summary:        summarize(trends),
	}, true, nil
}

func periodPayload(p period, set models.MetricSet) models.PeriodPayload {
	start, end := p.start, p.end
	return models.PeriodPayload{
		Label:   p.label,
		Start:   &start,
		End:     &end,
		Metrics: metricsMap(set),
	}
}

func emptyTrendsData() models.MonthlyTrendsData {
	return models.MonthlyTrendsData{
		CurrentPeriod:  models.PeriodPayload{Label: "No Data", Metrics: map[string]float64{}},
		PreviousPeriod: models.PeriodPayload{Label: "No Data", Metrics: map[string]float64{}},
		Trends:         map[string]models.TrendResult{},
		Summary:        models.TrendSummary{},
	}
}
