package models

import "time"

// Trend directions surfaced to the dashboard.
const (
	TrendUp      = "up"
	TrendDown    = "down"
	TrendNeutral = "neutral"
)

// MetricSet is the fixed basket of monthly KPIs, computed per period.
// Every field defaults to 0 when the underlying aggregate is absent so
// no null ever reaches the derived-metric arithmetic.
type MetricSet struct {
	DistinctOrders      float64 `json:"distinctOrders"`
	TotalQuantitySold   float64 `json:"totalQuantitySold"`
	GMV                 float64 `json:"grossMerchandiseValue"`
	TotalRevenue        float64 `json:"totalRevenue"`
	TotalSettlement     float64 `json:"totalSettlement"`
	TotalHPP            float64 `json:"costOfGoodsSold"`
	GrossProfit         float64 `json:"grossProfit"`
	AdvertisingSpend    float64 `json:"advertisingSpend"`
	AffiliateEndorseFee float64 `json:"affiliateEndorseFee"`
	AffiliateSales      float64 `json:"affiliateSales"`
	AffiliateCommission float64 `json:"affiliateCommission"`
	SalariesBenefits    float64 `json:"salariesBenefits"`
	NetProfit           float64 `json:"netProfit"`
	AverageOrderValue   float64 `json:"averageOrderValue"`
}

// TrendResult compares one metric across the two periods. ColorClass is a
// presentation hint for the dashboard cards, computed here rather than in the UI.
type TrendResult struct {
	Current          float64 `json:"current"`
	Previous         float64 `json:"previous"`
	AbsoluteChange   float64 `json:"absoluteChange"`
	PercentageChange float64 `json:"percentageChange"`
	Direction        string  `json:"direction"`
	IsImprovement    bool    `json:"isImprovement"`
	ColorClass       string  `json:"colorClass"`
}

// StockSnapshot is computed from the current product catalog, not period-scoped.
type StockSnapshot struct {
	TotalProducts    int     `json:"totalProducts"`
	LowStockCount    int     `json:"lowStockCount"`    // 0 < stock <= min_stock
	OutOfStockCount  int     `json:"outOfStockCount"`  // stock == 0
	TotalStockUnits  int     `json:"totalStockUnits"`  // sum of stock_quantity
	TotalStockValue  float64 `json:"totalStockValue"`  // sum of stock_quantity * price
	AverageStock     float64 `json:"averageStockPerProduct"`
}

// TrendSummary tallies improving/declining/neutral KPIs. The three counts are
// not guaranteed to sum to totalKPIs at exactly 0% change on a lower-is-better
// metric (improvement and neutral at once); that boundary is kept as-is.
type TrendSummary struct {
	TotalKPIs     int `json:"totalKPIs"`
	ImprovingKPIs int `json:"improvingKPIs"`
	DecliningKPIs int `json:"decliningKPIs"`
	NeutralKPIs   int `json:"neutralKPIs"`
}

// PeriodPayload is a calendar month in the trends response. Start/End are
// omitted on the "No Data" placeholder.
type PeriodPayload struct {
	Label   string             `json:"label"`
	Start   *time.Time         `json:"start,omitempty"`
	End     *time.Time         `json:"end,omitempty"`
	Metrics map[string]float64 `json:"metrics"`
}

type MonthlyTrendsData struct {
	CurrentPeriod  PeriodPayload          `json:"currentPeriod"`
	PreviousPeriod PeriodPayload          `json:"previousPeriod"`
	StockMetrics   *StockSnapshot         `json:"stockMetrics,omitempty"`
	Trends         map[string]TrendResult `json:"trends"`
	Summary        TrendSummary           `json:"summary"`
}

// PeriodFinancials is the reduced two-metric shape used by the summary card.
type PeriodFinancials struct {
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
}

type TrendsSummaryData struct {
	CurrentMonth    string           `json:"currentMonth"`
	PreviousMonth   string           `json:"previousMonth"`
	RevenueChange   TrendResult      `json:"revenueChange"`
	ProfitChange    TrendResult      `json:"profitChange"`
	CurrentMetrics  PeriodFinancials `json:"currentMetrics"`
	PreviousMetrics PeriodFinancials `json:"previousMetrics"`
}
