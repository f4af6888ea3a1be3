package product_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/firhaanali/dashboard-dbusana-sub007/config"
	"github.com/firhaanali/dashboard-dbusana-sub007/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdateStock godoc
// @Summary Update product stock
// @Description Sets the current stock quantity for a product
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param payload body models.UpdateStockRequest true "New stock quantity"
// @Success 200 {object} models.ApiResponse{data=models.ProductData}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /products/{id}/stock [patch]
func (ctl *Controller) UpdateStock(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	var req models.UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponseWithDetails(c, "Invalid stock payload", err))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.ProductData
	if err := ctl.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("[admin.product.stock] ERROR lookup failed id=%s err=%v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to update stock", err))
		return
	}

	previous := product.StockQuantity
	product.StockQuantity = *req.StockQuantity

	if err := ctl.db.WithContext(ctx).Model(&product).Update("stock_quantity", product.StockQuantity).Error; err != nil {
		log.Printf("[admin.product.stock] ERROR update failed id=%s err=%v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to update stock", err))
		return
	}

	c.Set("resourceID", product.ID)

	log.Printf("[admin.product.stock] updated id=%s stock %d -> %d", id, previous, product.StockQuantity)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Stock updated successfully", product))
}
