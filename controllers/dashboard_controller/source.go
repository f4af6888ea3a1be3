package dashboard_controller

import (
	"context"
	"database/sql"
	"time"

	"github.com/firhaanali/dashboard-dbusana-sub007/models"
	"gorm.io/gorm"
)

// salesAggregate holds the raw sums pulled from sales_data for one period.
// distinct_orders counts unique order ids, not line-item rows.
type salesAggregate struct {
	DistinctOrders   int64
	TotalQuantity    float64
	OrderAmount      float64
	TotalRevenue     float64
	SettlementAmount float64
	TotalHPP         float64
}

type affiliateAggregate struct {
	EndorseFee     float64
	ActualSales    float64
	PaidCommission float64
}

// trendSource is the read surface the trend computation needs. Sales and the
// stock snapshot are mandatory; advertising, affiliate and payroll are the
// optional side-ledgers that may not exist in every deployment.
type trendSource interface {
	LatestSaleTime(ctx context.Context) (time.Time, bool, error)
	SalesAggregate(ctx context.Context, start, end time.Time) (salesAggregate, error)
	AdvertisingSpend(ctx context.Context, start, end time.Time) (float64, error)
	AffiliateAggregate(ctx context.Context, start, end time.Time) (affiliateAggregate, error)
	PayrollExpense(ctx context.Context, start, end time.Time) (float64, error)
	StockSnapshot(ctx context.Context) (models.StockSnapshot, error)
}

// Controller serves the dashboard trend endpoints. The store handle is
// injected by main; handlers never reach for ambient globals.
type Controller struct {
	src trendSource
}

func New(db *gorm.DB) *Controller {
	return &Controller{src: &gormTrendSource{db: db}}
}

func newWithSource(src trendSource) *Controller {
	return &Controller{src: src}
}

type gormTrendSource struct {
	db *gorm.DB
}

func (s *gormTrendSource) LatestSaleTime(ctx context.Context) (time.Time, bool, error) {
	var latest sql.NullTime
	if err := s.db.WithContext(ctx).
		Model(&models.SalesData{}).
		Select("MAX(created_time)").
		Scan(&latest).Error; err != nil {
		return time.Time{}, false, err
	}
	if !latest.Valid {
		return time.Time{}, false, nil
	}
	return latest.Time, true, nil
}

func (s *gormTrendSource) SalesAggregate(ctx context.Context, start, end time.Time) (salesAggregate, error) {
	var agg salesAggregate
	err := s.db.WithContext(ctx).
		Raw(`
			SELECT
				COUNT(DISTINCT order_id)::int               AS distinct_orders,
				COALESCE(SUM(quantity), 0)::float8          AS total_quantity,
				COALESCE(SUM(order_amount), 0)::float8      AS order_amount,
				COALESCE(SUM(total_revenue), 0)::float8     AS total_revenue,
				COALESCE(SUM(settlement_amount), 0)::float8 AS settlement_amount,
				COALESCE(SUM(hpp), 0)::float8               AS total_hpp
			FROM sales_data
			WHERE created_time >= ? AND created_time <= ?
		`, start, end).
		Scan(&agg).Error
	return agg, err
}

func (s *gormTrendSource) AdvertisingSpend(ctx context.Context, start, end time.Time) (float64, error) {
	var spend float64
	err := s.db.WithContext(ctx).
		Model(&models.AdvertisingSettlement{}).
		Where("order_settled_time >= ? AND order_settled_time <= ?", start, end).
		Select("COALESCE(SUM(settlement_amount), 0)").
		Scan(&spend).Error
	return spend, err
}

func (s *gormTrendSource) AffiliateAggregate(ctx context.Context, start, end time.Time) (affiliateAggregate, error) {
	var agg affiliateAggregate
	err := s.db.WithContext(ctx).
		Raw(`
			SELECT
				COALESCE(SUM(endorse_fee), 0)::float8     AS endorse_fee,
				COALESCE(SUM(actual_sales), 0)::float8    AS actual_sales,
				COALESCE(SUM(paid_commission), 0)::float8 AS paid_commission
			FROM affiliate_endorsements
			WHERE created_at >= ? AND created_at <= ?
		`, start, end).
		Scan(&agg).Error
	return agg, err
}

func (s *gormTrendSource) PayrollExpense(ctx context.Context, start, end time.Time) (float64, error) {
	var total float64
	err := s.db.WithContext(ctx).
		Model(&models.Expense{}).
		Where("category = ? AND expense_date >= ? AND expense_date <= ?", models.ExpenseCategorySalaries, start, end).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (s *gormTrendSource) StockSnapshot(ctx context.Context) (models.StockSnapshot, error) {
	var snap models.StockSnapshot
	err := s.db.WithContext(ctx).
		Raw(`
			SELECT
				COUNT(*)::int AS total_products,
				COALESCE(SUM(CASE WHEN stock_quantity > 0 AND stock_quantity <= min_stock THEN 1 ELSE 0 END), 0)::int AS low_stock_count,
				COALESCE(SUM(CASE WHEN stock_quantity = 0 THEN 1 ELSE 0 END), 0)::int AS out_of_stock_count,
				COALESCE(SUM(stock_quantity), 0)::int AS total_stock_units,
				COALESCE(SUM(stock_quantity * price), 0)::float8 AS total_stock_value
			FROM product_data
		`).
		Scan(&snap).Error
	if err != nil {
		return models.StockSnapshot{}, err
	}
	if snap.TotalProducts > 0 {
		snap.AverageStock = float64(snap.TotalStockUnits) / float64(snap.TotalProducts)
	}
	return snap, nil
}
