package product_controller

import (
	"net/http"

	"github.com/firhaanali/dashboard-dbusana-sub007/config"
	"github.com/firhaanali/dashboard-dbusana-sub007/models"
	"github.com/gin-gonic/gin"
)

// GetProductStats godoc
// @Summary Get product statistics
// @Description Returns the stock position: product counts, low/out-of-stock counts, total units and stock value
// @Tags Admin - Products
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.ProductStatsResponse}
// @Failure 500 {object} models.ApiResponse
// @Router /products/stats [get]
func (ctl *Controller) GetProductStats(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var row struct {
		TotalProducts      int
		LowStockProducts   int
		OutOfStockProducts int
		TotalStockUnits    int
		TotalStockValue    float64
	}
	if err := ctl.db.WithContext(ctx).
		Raw(`
			SELECT
				COUNT(*)::int AS total_products,
				COALESCE(SUM(CASE WHEN stock_quantity > 0 AND stock_quantity <= min_stock THEN 1 ELSE 0 END), 0)::int AS low_stock_products,
				COALESCE(SUM(CASE WHEN stock_quantity = 0 THEN 1 ELSE 0 END), 0)::int AS out_of_stock_products,
				COALESCE(SUM(stock_quantity), 0)::int AS total_stock_units,
				COALESCE(SUM(stock_quantity * price), 0)::float8 AS total_stock_value
			FROM product_data
		`).
		Scan(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to fetch product stats", err))
		return
	}

	// Compute percentages safely
	computePct := func(numerator int, denominator int) float64 {
		if denominator == 0 {
			return 0
		}
		return (float64(numerator) / float64(denominator)) * 100
	}

	averageStock := 0.0
	if row.TotalProducts > 0 {
		averageStock = float64(row.TotalStockUnits) / float64(row.TotalProducts)
	}

	stats := models.ProductStatsResponse{
		TotalProducts:      row.TotalProducts,
		LowStockProducts:   row.LowStockProducts,
		OutOfStockProducts: row.OutOfStockProducts,
		TotalStockUnits:    row.TotalStockUnits,
		TotalStockValue:    row.TotalStockValue,
		AverageStock:       averageStock,
		PercentageLowStock: computePct(row.LowStockProducts, row.TotalProducts),
		PercentageOutStock: computePct(row.OutOfStockProducts, row.TotalProducts),
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product stats fetched successfully", stats))
}
