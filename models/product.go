package models

import "time"

// ProductData is the static product catalog with the current stock position.
type ProductData struct {
	ID            string    `json:"id" gorm:"type:uuid;primaryKey"`
	ProductCode   string    `json:"product_code" gorm:"uniqueIndex"`
	ProductName   string    `json:"product_name"`
	Category      string    `json:"category" gorm:"index"`
	Size          string    `json:"size"`
	Color         string    `json:"color"`
	Price         float64   `json:"price"`
	Cost          float64   `json:"cost"`
	StockQuantity int       `json:"stock_quantity"`
	MinStock      int       `json:"min_stock"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (ProductData) TableName() string { return "product_data" }

type CreateProductRequest struct {
	ProductCode   string  `json:"product_code" binding:"required"`
	ProductName   string  `json:"product_name" binding:"required"`
	Category      string  `json:"category" binding:"required"`
	Size          string  `json:"size"`
	Color         string  `json:"color"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	Cost          float64 `json:"cost" binding:"gte=0"`
	StockQuantity int     `json:"stock_quantity" binding:"gte=0"`
	MinStock      int     `json:"min_stock" binding:"gte=0"`
}

type UpdateStockRequest struct {
	StockQuantity *int `json:"stock_quantity" binding:"required,gte=0"`
}

type ProductStatsResponse struct {
	TotalProducts      int     `json:"total_products"`
	LowStockProducts   int     `json:"low_stock_products"`
	OutOfStockProducts int     `json:"out_of_stock_products"`
	TotalStockUnits    int     `json:"total_stock_units"`
	TotalStockValue    float64 `json:"total_stock_value"`
	AverageStock       float64 `json:"average_stock_per_product"`
	PercentageLowStock float64 `json:"percentage_low_stock"`
	PercentageOutStock float64 `json:"percentage_out_of_stock"`
}
