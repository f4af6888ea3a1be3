package models

import "time"

// AdvertisingSettlement is one settled advertising charge from the marketplace.
// Period scoping uses order_settled_time, not the row creation time.
type AdvertisingSettlement struct {
	ID               string    `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID          string    `json:"order_id" gorm:"index"`
	SettlementAmount float64   `json:"settlement_amount"`
	SettlementPeriod string    `json:"settlement_period"` // e.g. "2025-04"
	AccountName      string    `json:"account_name"`
	Currency         string    `json:"currency"`
	OrderCreatedTime time.Time `json:"order_created_time"`
	OrderSettledTime time.Time `json:"order_settled_time" gorm:"index"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (AdvertisingSettlement) TableName() string { return "advertising_settlement" }

type AdvertisingStatsResponse struct {
	TotalSettlements           int      `json:"total_settlements"`
	TotalSpend                 float64  `json:"total_spend"`
	CurrentMonthSpend          float64  `json:"current_month_spend"`
	LastMonthSpend             float64  `json:"last_month_spend"`
	ChangePercentFromLastMonth *float64 `json:"change_percent_from_last_month,omitempty"`
}
