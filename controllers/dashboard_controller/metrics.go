package dashboard_controller

import (
	"context"
	"log"

	"github.com/firhaanali/dashboard-dbusana-sub007/models"
	"golang.org/x/sync/errgroup"
)

// collectMetrics pulls all aggregates for one period. The independent queries
// share no mutable state, so they are dispatched concurrently. A sales failure
// aborts the request; the optional side-ledgers fold to zero instead.
func collectMetrics(ctx context.Context, src trendSource, p period) (models.MetricSet, error) {
	var (
		sales   salesAggregate
		adSpend float64
		aff     affiliateAggregate
		payroll float64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sales, err = src.SalesAggregate(gctx, p.start, p.end)
		return err
	})
	g.Go(func() error {
		adSpend = optionalAggregate(gctx, "advertising", func(ctx context.Context) (float64, error) {
			return src.AdvertisingSpend(ctx, p.start, p.end)
		})
		return nil
	})
	g.Go(func() error {
		aff = optionalAggregate(gctx, "affiliate", func(ctx context.Context) (affiliateAggregate, error) {
			return src.AffiliateAggregate(ctx, p.start, p.end)
		})
		return nil
	})
	g.Go(func() error {
		payroll = optionalAggregate(gctx, "payroll", func(ctx context.Context) (float64, error) {
			return src.PayrollExpense(ctx, p.start, p.end)
		})
		return nil
	})
	if err := g.Wait(); err != nil {
		return models.MetricSet{}, err
	}

	return deriveMetrics(sales, adSpend, aff, payroll), nil
}

// optionalAggregate wraps a side-ledger query with a zero-value fallback.
// Those ledgers may not exist in every deployment, so a failure is logged and
// swallowed rather than failing the whole computation.
func optionalAggregate[T any](ctx context.Context, name string, query func(context.Context) (T, error)) T {
	v, err := query(ctx)
	if err != nil {
		log.Printf("[dashboard.monthly-trends] WARN optional %s aggregate failed, substituting zeros err=%v", name, err)
		var zero T
		return zero
	}
	return v
}

// deriveMetrics folds the raw sums into the full KPI basket. The derived
// metrics are computed only after every raw sum is resolved.
func deriveMetrics(sales salesAggregate, adSpend float64, aff affiliateAggregate, payroll float64) models.MetricSet {
	grossProfit := sales.SettlementAmount - sales.TotalHPP
	netProfit := grossProfit - adSpend - aff.EndorseFee - payroll

	aov := 0.0
	if sales.DistinctOrders > 0 {
		aov = sales.TotalRevenue / float64(sales.DistinctOrders)
	}

	return models.MetricSet{
		DistinctOrders:      float64(sales.DistinctOrders),
		TotalQuantitySold:   sales.TotalQuantity,
		GMV:                 sales.OrderAmount,
		TotalRevenue:        sales.TotalRevenue,
		TotalSettlement:     sales.SettlementAmount,
		TotalHPP:            sales.TotalHPP,
		GrossProfit:         grossProfit,
		AdvertisingSpend:    adSpend,
		AffiliateEndorseFee: aff.EndorseFee,
		AffiliateSales:      aff.ActualSales,
		AffiliateCommission: aff.PaidCommission,
		SalariesBenefits:    payroll,
		NetProfit:           netProfit,
		AverageOrderValue:   aov,
	}
}
