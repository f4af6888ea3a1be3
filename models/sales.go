package models

import "time"

// SalesData is one marketplace order line row. A single order may span
// multiple rows, so order-level counts must use COUNT(DISTINCT order_id).
type SalesData struct {
	ID               string     `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID          string     `json:"order_id" gorm:"index"`
	SellerSKU        string     `json:"seller_sku" gorm:"column:seller_sku"`
	ProductName      string     `json:"product_name"`
	Color            string     `json:"color"`
	Size             string     `json:"size"`
	Marketplace      string     `json:"marketplace" gorm:"index"`
	Quantity         int        `json:"quantity"`
	OrderAmount      float64    `json:"order_amount"`      // GMV: pre-deduction order total
	TotalRevenue     float64    `json:"total_revenue"`     // revenue after discounts
	SettlementAmount float64    `json:"settlement_amount"` // marketplace-remitted amount after fees
	HPP              float64    `json:"hpp" gorm:"column:hpp"`
	CreatedTime      time.Time  `json:"created_time" gorm:"index"`
	DeliveredTime    *time.Time `json:"delivered_time,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (SalesData) TableName() string { return "sales_data" }

// SalesListRow is the list-view projection used by the CMS sales table.
type SalesListRow struct {
	ID               string    `json:"id"`
	OrderID          string    `json:"order_id"`
	SellerSKU        string    `json:"seller_sku"`
	ProductName      string    `json:"product_name"`
	Marketplace      string    `json:"marketplace"`
	Quantity         int       `json:"quantity"`
	OrderAmount      float64   `json:"order_amount"`
	TotalRevenue     float64   `json:"total_revenue"`
	SettlementAmount float64   `json:"settlement_amount"`
	CreatedTime      time.Time `json:"created_time"`
}

type SalesStatsBreakdown struct {
	Count       int    `json:"count"`
	Description string `json:"description"`
}

type SalesStatsResponse struct {
	TotalOrders                int      `json:"total_orders"`
	TotalQuantity              int      `json:"total_quantity"`
	TotalRevenue               float64  `json:"total_revenue"`
	ChangePercentFromLastMonth *float64 `json:"change_percent_from_last_month,omitempty"`
	CurrentMonthOrders         int      `json:"current_month_orders"`
	LastMonthOrders            int      `json:"last_month_orders"`
}

// SalesFilterMetadata feeds the dashboard filter dropdowns.
type SalesFilterMetadata struct {
	Marketplaces []string   `json:"marketplaces"`
	EarliestSale *time.Time `json:"earliest_sale,omitempty"`
	LatestSale   *time.Time `json:"latest_sale,omitempty"`
}
