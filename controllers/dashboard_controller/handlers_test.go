package dashboard_controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/firhaanali/dashboard-dbusana-sub007/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(ctl *Controller, register func(*gin.Engine, *Controller), path string) *httptest.ResponseRecorder {
	router := gin.New()
	register(router, ctl)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)
	return w
}

func registerTrends(r *gin.Engine, ctl *Controller) {
	r.GET("/dashboard/monthly-trends", ctl.GetMonthlyTrends)
}

func registerSummary(r *gin.Engine, ctl *Controller) {
	r.GET("/dashboard/monthly-trends/summary", ctl.GetTrendsSummary)
}

type trendsEnvelope struct {
	Success bool                     `json:"success"`
	Message string                   `json:"message"`
	Data    models.MonthlyTrendsData `json:"data"`
	Error   string                   `json:"error"`
}

type summaryEnvelope struct {
	Success bool                     `json:"success"`
	Data    models.TrendsSummaryData `json:"data"`
}

func populatedSource() *fakeTrendSource {
	return &fakeTrendSource{
		latest: time.Date(2024, time.April, 18, 10, 0, 0, 0, time.UTC),
		sales: map[time.Month]salesAggregate{
			time.April: {DistinctOrders: 50, TotalQuantity: 120, OrderAmount: 6_000_000, TotalRevenue: 5_500_000, SettlementAmount: 4_800_000, TotalHPP: 2_500_000},
			time.March: {DistinctOrders: 40, TotalQuantity: 100, OrderAmount: 5_000_000, TotalRevenue: 4_400_000, SettlementAmount: 3_900_000, TotalHPP: 2_100_000},
		},
		adSpend: map[time.Month]float64{time.April: 300_000, time.March: 200_000},
		aff: map[time.Month]affiliateAggregate{
			time.April: {EndorseFee: 150_000, ActualSales: 900_000, PaidCommission: 45_000},
			time.March: {EndorseFee: 200_000, ActualSales: 700_000, PaidCommission: 35_000},
		},
		payroll: map[time.Month]float64{time.April: 1_000_000, time.March: 1_000_000},
		stock:   models.StockSnapshot{TotalProducts: 6, LowStockCount: 1, OutOfStockCount: 1, TotalStockUnits: 581, TotalStockValue: 52_000_000, AverageStock: 96.83},
	}
}

func TestGetMonthlyTrends(t *testing.T) {
	ctl := newWithSource(populatedSource())
	w := performRequest(ctl, registerTrends, "/dashboard/monthly-trends")

	require.Equal(t, http.StatusOK, w.Code)

	var resp trendsEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)

	assert.Equal(t, "April 2024", resp.Data.CurrentPeriod.Label)
	assert.Equal(t, "March 2024", resp.Data.PreviousPeriod.Label)
	require.Len(t, resp.Data.Trends, 14)
	assert.Equal(t, 14, resp.Data.Summary.TotalKPIs)

	revenue := resp.Data.Trends["totalRevenue"]
	assert.InDelta(t, 25, revenue.PercentageChange, 1e-6)
	assert.Equal(t, models.TrendUp, revenue.Direction)
	assert.True(t, revenue.IsImprovement)

	// Spend grew month over month, so the cost KPI declines.
	adSpend := resp.Data.Trends["advertisingSpend"]
	assert.Equal(t, models.TrendUp, adSpend.Direction)
	assert.False(t, adSpend.IsImprovement)

	require.NotNil(t, resp.Data.StockMetrics)
	assert.Equal(t, 6, resp.Data.StockMetrics.TotalProducts)

	assert.InDelta(t, 110_000, resp.Data.CurrentPeriod.Metrics["averageOrderValue"], 1e-6)
}

func TestGetMonthlyTrendsIsIdempotent(t *testing.T) {
	ctl := newWithSource(populatedSource())

	first := performRequest(ctl, registerTrends, "/dashboard/monthly-trends")
	second := performRequest(ctl, registerTrends, "/dashboard/monthly-trends")

	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.Bytes(), second.Body.Bytes())
}

func TestGetMonthlyTrendsNoData(t *testing.T) {
	ctl := newWithSource(&fakeTrendSource{noSales: true})
	w := performRequest(ctl, registerTrends, "/dashboard/monthly-trends")

	require.Equal(t, http.StatusOK, w.Code)

	var resp trendsEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)

	assert.Equal(t, "No Data", resp.Data.CurrentPeriod.Label)
	assert.Equal(t, "No Data", resp.Data.PreviousPeriod.Label)
	assert.Empty(t, resp.Data.Trends)
	assert.Zero(t, resp.Data.Summary.TotalKPIs)
	assert.Nil(t, resp.Data.StockMetrics)
}

func TestGetMonthlyTrendsSalesFailure(t *testing.T) {
	src := populatedSource()
	src.salesErr = errors.New("connection refused")

	ctl := newWithSource(src)
	w := performRequest(ctl, registerTrends, "/dashboard/monthly-trends")

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp trendsEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
}

func TestGetMonthlyTrendsStockFailure(t *testing.T) {
	src := populatedSource()
	src.stockErr = errors.New("relation product_data does not exist")

	ctl := newWithSource(src)
	w := performRequest(ctl, registerTrends, "/dashboard/monthly-trends")

	// The stock snapshot is mandatory. Unlike the side-ledgers it never
	// degrades to zeros.
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetMonthlyTrendsOptionalLedgerFailure(t *testing.T) {
	src := populatedSource()
	src.adErr = errors.New("relation advertising_settlement does not exist")
	src.affErr = errors.New("relation affiliate_endorsements does not exist")
	src.payrollErr = errors.New("relation expenses does not exist")

	ctl := newWithSource(src)
	w := performRequest(ctl, registerTrends, "/dashboard/monthly-trends")

	require.Equal(t, http.StatusOK, w.Code)

	var resp trendsEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)

	assert.Zero(t, resp.Data.CurrentPeriod.Metrics["advertisingSpend"])
	assert.Zero(t, resp.Data.CurrentPeriod.Metrics["affiliateEndorseFee"])
	assert.Zero(t, resp.Data.CurrentPeriod.Metrics["salariesBenefits"])
	// Sales-derived KPIs are untouched by the degraded ledgers.
	assert.InDelta(t, 5_500_000, resp.Data.CurrentPeriod.Metrics["totalRevenue"], 1e-6)
}

func TestGetTrendsSummary(t *testing.T) {
	ctl := newWithSource(populatedSource())
	w := performRequest(ctl, registerSummary, "/dashboard/monthly-trends/summary")

	require.Equal(t, http.StatusOK, w.Code)

	var resp summaryEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)

	assert.Equal(t, "April 2024", resp.Data.CurrentMonth)
	assert.Equal(t, "March 2024", resp.Data.PreviousMonth)
	assert.InDelta(t, 5_500_000, resp.Data.CurrentMetrics.Revenue, 1e-6)
	// Profit here is settlement minus COGS only.
	assert.InDelta(t, 2_300_000, resp.Data.CurrentMetrics.Profit, 1e-6)
	assert.InDelta(t, 25, resp.Data.RevenueChange.PercentageChange, 1e-6)
	assert.True(t, resp.Data.ProfitChange.IsImprovement)
}

func TestGetTrendsSummaryNoData(t *testing.T) {
	ctl := newWithSource(&fakeTrendSource{noSales: true})
	w := performRequest(ctl, registerSummary, "/dashboard/monthly-trends/summary")

	require.Equal(t, http.StatusOK, w.Code)

	var resp summaryEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	assert.Equal(t, "No Data", resp.Data.CurrentMonth)
	assert.Equal(t, "No Data", resp.Data.PreviousMonth)
}

func TestGetTrendsSummaryAggregateFailure(t *testing.T) {
	src := populatedSource()
	src.salesErr = errors.New("connection refused")

	ctl := newWithSource(src)
	w := performRequest(ctl, registerSummary, "/dashboard/monthly-trends/summary")

	require.Equal(t, http.StatusInternalServerError, w.Code)
}
