package models

import "time"

// ReturnsCancellation is one returned or cancelled order row.
type ReturnsCancellation struct {
	ID             string    `json:"id" gorm:"type:uuid;primaryKey"`
	OrderID        string    `json:"order_id" gorm:"index"`
	Type           string    `json:"type"` // return | cancel
	Reason         string    `json:"reason"`
	ReturnedAmount float64   `json:"returned_amount"`
	RestockStatus  string    `json:"restock_status"` // pending | restocked | written_off
	ReturnDate     time.Time `json:"return_date" gorm:"index"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (ReturnsCancellation) TableName() string { return "returns_cancellations" }

type CreateReturnRequest struct {
	OrderID        string    `json:"order_id" binding:"required"`
	Type           string    `json:"type" binding:"required,oneof=return cancel"`
	Reason         string    `json:"reason"`
	ReturnedAmount float64   `json:"returned_amount" binding:"required,gt=0"`
	RestockStatus  string    `json:"restock_status" binding:"omitempty,oneof=pending restocked written_off"`
	ReturnDate     time.Time `json:"return_date" binding:"required"`
}

type ReturnsStatsResponse struct {
	TotalReturns        int     `json:"total_returns"`
	TotalCancellations  int     `json:"total_cancellations"`
	TotalReturnedAmount float64 `json:"total_returned_amount"`
	PendingRestock      int     `json:"pending_restock"`
	CurrentMonthReturns int     `json:"current_month_returns"`
	LastMonthReturns    int     `json:"last_month_returns"`
}
