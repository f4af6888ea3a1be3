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

// CreateProduct godoc
// @Summary Create a product
// @Description Adds a catalog product with its initial stock position
// @Tags Admin - Products
// @Accept json
// @Produce json
// @Param payload body models.CreateProductRequest true "Product"
// @Success 201 {object} models.ApiResponse{data=models.ProductData}
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /products [post]
func (ctl *Controller) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[admin.product.create] WARN invalid payload err=%v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponseWithDetails(c, "Invalid product payload", err))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var existing models.ProductData
	err := ctl.db.WithContext(ctx).Where("product_code = ?", req.ProductCode).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Product code already exists"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[admin.product.create] ERROR lookup failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to create product", err))
		return
	}

	product := models.ProductData{
		ID:            uuid.Must(uuid.NewV7()).String(),
		ProductCode:   req.ProductCode,
		ProductName:   req.ProductName,
		Category:      req.Category,
		Size:          req.Size,
		Color:         req.Color,
		Price:         req.Price,
		Cost:          req.Cost,
		StockQuantity: req.StockQuantity,
		MinStock:      req.MinStock,
	}

	if err := ctl.db.WithContext(ctx).Create(&product).Error; err != nil {
		log.Printf("[admin.product.create] ERROR insert failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to create product", err))
		return
	}

	c.Set("resourceID", product.ID)

	log.Printf("[admin.product.create] created id=%s code=%s", product.ID, product.ProductCode)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}
