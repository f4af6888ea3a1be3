package dashboard_controller

import (
	"testing"

	"github.com/firhaanali/dashboard-dbusana-sub007/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTrend(t *testing.T) {
	tests := []struct {
		name          string
		current       float64
		previous      float64
		lowerIsBetter bool
		wantChange    float64
		wantDirection string
		wantImproving bool
	}{
		{
			name:          "revenue up fifty percent",
			current:       1_500_000,
			previous:      1_000_000,
			wantChange:    50,
			wantDirection: models.TrendUp,
			wantImproving: true,
		},
		{
			name:          "revenue down",
			current:       800_000,
			previous:      1_000_000,
			wantChange:    -20,
			wantDirection: models.TrendDown,
			wantImproving: false,
		},
		{
			name:          "metric appeared from zero",
			current:       250_000,
			previous:      0,
			wantChange:    100,
			wantDirection: models.TrendUp,
			wantImproving: true,
		},
		{
			name:          "both periods empty",
			current:       0,
			previous:      0,
			wantChange:    0,
			wantDirection: models.TrendNeutral,
			wantImproving: false,
		},
		{
			name:          "metric vanished to zero",
			current:       0,
			previous:      400_000,
			wantChange:    -100,
			wantDirection: models.TrendDown,
			wantImproving: false,
		},
		{
			name:          "ad spend rising is not an improvement",
			current:       300_000,
			previous:      200_000,
			lowerIsBetter: true,
			wantChange:    50,
			wantDirection: models.TrendUp,
			wantImproving: false,
		},
		{
			name:          "ad spend falling is an improvement",
			current:       150_000,
			previous:      200_000,
			lowerIsBetter: true,
			wantChange:    -25,
			wantDirection: models.TrendDown,
			wantImproving: true,
		},
		{
			name:          "flat lower-is-better still counts as improvement",
			current:       200_000,
			previous:      200_000,
			lowerIsBetter: true,
			wantChange:    0,
			wantDirection: models.TrendNeutral,
			wantImproving: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeTrend(tt.current, tt.previous, tt.lowerIsBetter)

			assert.Equal(t, tt.current, got.Current)
			assert.Equal(t, tt.previous, got.Previous)
			assert.InDelta(t, tt.current-tt.previous, got.AbsoluteChange, 1e-9)
			assert.InDelta(t, tt.wantChange, got.PercentageChange, 1e-9)
			assert.Equal(t, tt.wantDirection, got.Direction)
			assert.Equal(t, tt.wantImproving, got.IsImprovement)
		})
	}
}

func TestColorClass(t *testing.T) {
	assert.Equal(t, "text-gray-500", colorClass(models.TrendNeutral, false))
	assert.Equal(t, "text-gray-500", colorClass(models.TrendNeutral, true))
	assert.Equal(t, "text-green-600", colorClass(models.TrendUp, true))
	assert.Equal(t, "text-red-600", colorClass(models.TrendUp, false))
	assert.Equal(t, "text-green-600", colorClass(models.TrendDown, true))
	assert.Equal(t, "text-red-600", colorClass(models.TrendDown, false))
}

func TestMetricDescriptorPolarity(t *testing.T) {
	lowerIsBetter := map[string]bool{}
	for _, d := range metricDescriptors {
		lowerIsBetter[d.key] = d.lowerIsBetter
	}

	require.Len(t, metricDescriptors, 14)
	assert.True(t, lowerIsBetter["advertisingSpend"])
	assert.True(t, lowerIsBetter["affiliateEndorseFee"])

	for key, lower := range lowerIsBetter {
		if key == "advertisingSpend" || key == "affiliateEndorseFee" {
			continue
		}
		assert.False(t, lower, "metric %s should be higher-is-better", key)
	}
}

func TestBuildTrends(t *testing.T) {
	current := models.MetricSet{
		TotalRevenue:        1_500_000,
		AdvertisingSpend:    300_000,
		AffiliateEndorseFee: 100_000,
	}
	previous := models.MetricSet{
		TotalRevenue:        1_000_000,
		AdvertisingSpend:    200_000,
		AffiliateEndorseFee: 150_000,
	}

	trends := buildTrends(current, previous)
	require.Len(t, trends, len(metricDescriptors))

	assert.True(t, trends["totalRevenue"].IsImprovement)
	assert.Equal(t, models.TrendUp, trends["totalRevenue"].Direction)

	// Spend grew, so the trend points up but is not an improvement.
	assert.Equal(t, models.TrendUp, trends["advertisingSpend"].Direction)
	assert.False(t, trends["advertisingSpend"].IsImprovement)

	// Fee shrank, which is an improvement for a cost metric.
	assert.Equal(t, models.TrendDown, trends["affiliateEndorseFee"].Direction)
	assert.True(t, trends["affiliateEndorseFee"].IsImprovement)
}

func TestSummarize(t *testing.T) {
	trends := map[string]models.TrendResult{
		"a": {Direction: models.TrendUp, IsImprovement: true},
		"b": {Direction: models.TrendDown, IsImprovement: false},
		"c": {Direction: models.TrendNeutral, IsImprovement: false},
		// Flat cost metric: improving and neutral at the same time, so it
		// contributes to both tallies and never to declining.
		"d": {Direction: models.TrendNeutral, IsImprovement: true},
	}

	summary := summarize(trends)

	assert.Equal(t, 4, summary.TotalKPIs)
	assert.Equal(t, 2, summary.ImprovingKPIs)
	assert.Equal(t, 1, summary.DecliningKPIs)
	assert.Equal(t, 2, summary.NeutralKPIs)
}

func TestMetricsMapCoversEveryDescriptor(t *testing.T) {
	set := models.MetricSet{TotalRevenue: 42, NetProfit: 7}
	m := metricsMap(set)

	require.Len(t, m, len(metricDescriptors))
	assert.Equal(t, 42.0, m["totalRevenue"])
	assert.Equal(t, 7.0, m["netProfit"])
	for _, d := range metricDescriptors {
		_, ok := m[d.key]
		assert.True(t, ok, "metrics map missing %s", d.key)
	}
}
