package models

import "time"

// Supplier master record for purchasing.
type Supplier struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name"`
	ContactName string    `json:"contact_name"`
	Phone       string    `json:"phone"`
	Address     string    `json:"address"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Supplier) TableName() string { return "suppliers" }

// PurchaseOrder is one stock purchase from a supplier.
type PurchaseOrder struct {
	ID              string     `json:"id" gorm:"type:uuid;primaryKey"`
	PONumber        string     `json:"po_number" gorm:"column:po_number;uniqueIndex"`
	SupplierID      string     `json:"supplier_id" gorm:"index"`
	Status          string     `json:"status"` // draft | ordered | received | cancelled
	TotalCost       float64    `json:"total_cost"`
	OrderDate       time.Time  `json:"order_date" gorm:"index"`
	ExpectedArrival *time.Time `json:"expected_arrival,omitempty"`
	ReceivedAt      *time.Time `json:"received_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (PurchaseOrder) TableName() string { return "purchase_orders" }

// PurchaseOrderRow joins the supplier name for list views.
type PurchaseOrderRow struct {
	PurchaseOrder
	SupplierName string `json:"supplier_name"`
}

type CreatePurchaseOrderRequest struct {
	PONumber        string     `json:"po_number" binding:"required"`
	SupplierID      string     `json:"supplier_id" binding:"required,uuid"`
	TotalCost       float64    `json:"total_cost" binding:"required,gt=0"`
	OrderDate       time.Time  `json:"order_date" binding:"required"`
	ExpectedArrival *time.Time `json:"expected_arrival,omitempty"`
}

type UpdatePOStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft ordered received cancelled"`
}
