package dashboard_controller

import "github.com/firhaanali/dashboard-dbusana-sub007/models"

// metricDescriptor declares one KPI: its payload key, its polarity and how to
// read it off a MetricSet. Polarity lives here rather than at call sites so a
// new metric cannot pick up a mismatched lower-is-better flag.
type metricDescriptor struct {
	key           string
	lowerIsBetter bool
	value         func(models.MetricSet) float64
}

var metricDescriptors = []metricDescriptor{
	{key: "distinctOrders", value: func(m models.MetricSet) float64 { return m.DistinctOrders }},
	{key: "totalQuantitySold", value: func(m models.MetricSet) float64 { return m.TotalQuantitySold }},
	{key: "grossMerchandiseValue", value: func(m models.MetricSet) float64 { return m.GMV }},
	{key: "totalRevenue", value: func(m models.MetricSet) float64 { return m.TotalRevenue }},
	{key: "totalSettlement", value: func(m models.MetricSet) float64 { return m.TotalSettlement }},
	{key: "costOfGoodsSold", value: func(m models.MetricSet) float64 { return m.TotalHPP }},
	{key: "grossProfit", value: func(m models.MetricSet) float64 { return m.GrossProfit }},
	{key: "advertisingSpend", lowerIsBetter: true, value: func(m models.MetricSet) float64 { return m.AdvertisingSpend }},
	{key: "affiliateEndorseFee", lowerIsBetter: true, value: func(m models.MetricSet) float64 { return m.AffiliateEndorseFee }},
	{key: "affiliateSales", value: func(m models.MetricSet) float64 { return m.AffiliateSales }},
	{key: "affiliateCommission", value: func(m models.MetricSet) float64 { return m.AffiliateCommission }},
	{key: "salariesBenefits", value: func(m models.MetricSet) float64 { return m.SalariesBenefits }},
	{key: "netProfit", value: func(m models.MetricSet) float64 { return m.NetProfit }},
	{key: "averageOrderValue", value: func(m models.MetricSet) float64 { return m.AverageOrderValue }},
}

// computeTrend compares one metric across the two periods. With a zero
// previous value the change is 100% when the metric appeared and 0% when both
// periods are empty. At exactly 0% change a lower-is-better metric still
// counts as an improvement; that boundary is kept as observed behavior.
func computeTrend(current, previous float64, lowerIsBetter bool) models.TrendResult {
	change := 0.0
	if previous == 0 {
		if current > 0 {
			change = 100
		}
	} else {
		change = (current - previous) / previous * 100
	}

	direction := models.TrendNeutral
	switch {
	case change > 0:
		direction = models.TrendUp
	case change < 0:
		direction = models.TrendDown
	}

	isPositive := change > 0
	improvement := isPositive
	if lowerIsBetter {
		improvement = !isPositive
	}

	return models.TrendResult{
		Current:          current,
		Previous:         previous,
		AbsoluteChange:   current - previous,
		PercentageChange: change,
		Direction:        direction,
		IsImprovement:    improvement,
		ColorClass:       colorClass(direction, improvement),
	}
}

// colorClass maps a trend onto the dashboard card color hint.
func colorClass(direction string, improvement bool) string {
	if direction == models.TrendNeutral {
		return "text-gray-500"
	}
	if improvement {
		return "text-green-600"
	}
	return "text-red-600"
}

// buildTrends runs the trend calculator per metric, polarity taken from the
// descriptor table.
func buildTrends(current, previous models.MetricSet) map[string]models.TrendResult {
	trends := make(map[string]models.TrendResult, len(metricDescriptors))
	for _, d := range metricDescriptors {
		trends[d.key] = computeTrend(d.value(current), d.value(previous), d.lowerIsBetter)
	}
	return trends
}

// summarize tallies the per-metric results. Declining requires a non-neutral
// direction, so a neutral-but-not-improving metric is only counted as neutral.
func summarize(trends map[string]models.TrendResult) models.TrendSummary {
	summary := models.TrendSummary{TotalKPIs: len(trends)}
	for _, t := range trends {
		if t.IsImprovement {
			summary.ImprovingKPIs++
		}
		if !t.IsImprovement && t.Direction != models.TrendNeutral {
			summary.DecliningKPIs++
		}
		if t.Direction == models.TrendNeutral {
			summary.NeutralKPIs++
		}
	}
	return summary
}

// metricsMap flattens a MetricSet into the response payload shape.
func metricsMap(m models.MetricSet) map[string]float64 {
	out := make(map[string]float64, len(metricDescriptors))
	for _, d := range metricDescriptors {
		out[d.key] = d.value(m)
	}
	return out
}
