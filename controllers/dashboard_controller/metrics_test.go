package dashboard_controller

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/firhaanali/dashboard-dbusana-sub007/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTrendSource backs the computation with canned data, keyed by period
// start month, so handler and metric tests run without a database.
type fakeTrendSource struct {
	latest     time.Time
	noSales    bool
	latestErr  error
	salesErr   error
	stockErr   error
	adErr      error
	affErr     error
	payrollErr error

	sales   map[time.Month]salesAggregate
	adSpend map[time.Month]float64
	aff     map[time.Month]affiliateAggregate
	payroll map[time.Month]float64
	stock   models.StockSnapshot
}

func (f *fakeTrendSource) LatestSaleTime(ctx context.Context) (time.Time, bool, error) {
	if f.latestErr != nil {
		return time.Time{}, false, f.latestErr
	}
	if f.noSales {
		return time.Time{}, false, nil
	}
	return f.latest, true, nil
}

func (f *fakeTrendSource) SalesAggregate(ctx context.Context, start, end time.Time) (salesAggregate, error) {
	if f.salesErr != nil {
		return salesAggregate{}, f.salesErr
	}
	return f.sales[start.Month()], nil
}

func (f *fakeTrendSource) AdvertisingSpend(ctx context.Context, start, end time.Time) (float64, error) {
	if f.adErr != nil {
		return 0, f.adErr
	}
	return f.adSpend[start.Month()], nil
}

func (f *fakeTrendSource) AffiliateAggregate(ctx context.Context, start, end time.Time) (affiliateAggregate, error) {
	if f.affErr != nil {
		return affiliateAggregate{}, f.affErr
	}
	return f.aff[start.Month()], nil
}

func (f *fakeTrendSource) PayrollExpense(ctx context.Context, start, end time.Time) (float64, error) {
	if f.payrollErr != nil {
		return 0, f.payrollErr
	}
	return f.payroll[start.Month()], nil
}

func (f *fakeTrendSource) StockSnapshot(ctx context.Context) (models.StockSnapshot, error) {
	if f.stockErr != nil {
		return models.StockSnapshot{}, f.stockErr
	}
	return f.stock, nil
}

func TestDeriveMetrics(t *testing.T) {
	sales := salesAggregate{
		DistinctOrders:   40,
		TotalQuantity:    95,
		OrderAmount:      5_000_000,
		TotalRevenue:     4_600_000,
		SettlementAmount: 4_000_000,
		TotalHPP:         2_200_000,
	}
	aff := affiliateAggregate{EndorseFee: 300_000, ActualSales: 1_100_000, PaidCommission: 55_000}

	set := deriveMetrics(sales, 500_000, aff, 700_000)

	assert.Equal(t, 40.0, set.DistinctOrders)
	assert.Equal(t, 5_000_000.0, set.GMV)
	assert.InDelta(t, 1_800_000, set.GrossProfit, 1e-9)
	// netProfit = gross - advertising - endorse fee - payroll
	assert.InDelta(t, 300_000, set.NetProfit, 1e-9)
	assert.InDelta(t, 115_000, set.AverageOrderValue, 1e-9)
	assert.Equal(t, 1_100_000.0, set.AffiliateSales)
	assert.Equal(t, 55_000.0, set.AffiliateCommission)
	assert.Equal(t, 700_000.0, set.SalariesBenefits)
}

func TestDeriveMetricsZeroOrders(t *testing.T) {
	set := deriveMetrics(salesAggregate{TotalRevenue: 100}, 0, affiliateAggregate{}, 0)
	assert.Zero(t, set.AverageOrderValue)
}

func TestOptionalAggregateFallsBackToZero(t *testing.T) {
	got := optionalAggregate(context.Background(), "advertising", func(ctx context.Context) (float64, error) {
		return 0, errors.New("relation does not exist")
	})
	assert.Zero(t, got)

	agg := optionalAggregate(context.Background(), "affiliate", func(ctx context.Context) (affiliateAggregate, error) {
		return affiliateAggregate{}, errors.New("timeout")
	})
	assert.Equal(t, affiliateAggregate{}, agg)
}

func TestCollectMetricsToleratesOptionalFailures(t *testing.T) {
	src := &fakeTrendSource{
		sales: map[time.Month]salesAggregate{
			time.April: {DistinctOrders: 10, TotalRevenue: 1_000_000, SettlementAmount: 900_000, TotalHPP: 400_000},
		},
		adErr:      errors.New("advertising ledger missing"),
		affErr:     errors.New("affiliate ledger missing"),
		payrollErr: errors.New("expenses ledger missing"),
	}

	p := monthPeriod(time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC))
	set, err := collectMetrics(context.Background(), src, p)
	require.NoError(t, err)

	assert.Equal(t, 10.0, set.DistinctOrders)
	assert.Zero(t, set.AdvertisingSpend)
	assert.Zero(t, set.AffiliateEndorseFee)
	assert.Zero(t, set.SalariesBenefits)
	// With the side-ledgers zeroed, net profit collapses to gross profit.
	assert.InDelta(t, set.GrossProfit, set.NetProfit, 1e-9)
}

func TestCollectMetricsFailsOnSalesError(t *testing.T) {
	src := &fakeTrendSource{salesErr: errors.New("connection refused")}

	p := monthPeriod(time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC))
	_, err := collectMetrics(context.Background(), src, p)
	require.Error(t, err)
}
