package services

import (
	"testing"
	"time"

	"github.com/firhaanali/dashboard-dbusana-sub007/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTrendsData() models.MonthlyTrendsData {
	start := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return models.MonthlyTrendsData{
		CurrentPeriod: models.PeriodPayload{
			Label: "April 2024",
			Start: &start,
			End:   &end,
			Metrics: map[string]float64{
				"totalRevenue": 5_500_000,
				"netProfit":    1_350_000,
			},
		},
		PreviousPeriod: models.PeriodPayload{
			Label: "March 2024",
			Metrics: map[string]float64{
				"totalRevenue": 4_400_000,
				"netProfit":    1_100_000,
			},
		},
		Trends: map[string]models.TrendResult{
			"totalRevenue": {Current: 5_500_000, Previous: 4_400_000, PercentageChange: 25, Direction: models.TrendUp, IsImprovement: true},
			"netProfit":    {Current: 1_350_000, Previous: 1_100_000, PercentageChange: 22.7, Direction: models.TrendUp, IsImprovement: true},
		},
		Summary: models.TrendSummary{TotalKPIs: 2, ImprovingKPIs: 2},
	}
}

func TestBuildMonthlyTrendsPDF(t *testing.T) {
	buf, err := BuildMonthlyTrendsPDF(sampleTrendsData())
	require.NoError(t, err)
	require.NotNil(t, buf)

	body := buf.Bytes()
	assert.Greater(t, len(body), 1000)
	assert.Equal(t, "%PDF", string(body[:4]))
}

func TestBuildMonthlyTrendsPDFNoData(t *testing.T) {
	data := models.MonthlyTrendsData{
		CurrentPeriod:  models.PeriodPayload{Label: "No Data", Metrics: map[string]float64{}},
		PreviousPeriod: models.PeriodPayload{Label: "No Data", Metrics: map[string]float64{}},
		Trends:         map[string]models.TrendResult{},
	}

	buf, err := BuildMonthlyTrendsPDF(data)
	require.NoError(t, err)
	assert.NotZero(t, buf.Len())
}
