package purchase_controller

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

// CreatePurchaseOrder godoc
// @Summary Create a purchase order
// @Description Adds a draft purchase order against an existing supplier
// @Tags Admin - Purchasing
// @Accept json
// @Produce json
// @Param payload body models.CreatePurchaseOrderRequest true "Purchase order"
// @Success 201 {object} models.ApiResponse{data=models.PurchaseOrder}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /purchase-orders [post]
func (ctl *Controller) CreatePurchaseOrder(c *gin.Context) {
	var req models.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[admin.purchasing.create] WARN invalid payload err=%v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponseWithDetails(c, "Invalid purchase order payload", err))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var supplier models.Supplier
	if err := ctl.db.WithContext(ctx).Where("id = ?", req.SupplierID).First(&supplier).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Supplier not found"))
			return
		}
		log.Printf("[admin.purchasing.create] ERROR supplier lookup failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to create purchase order", err))
		return
	}

	po := models.PurchaseOrder{
		ID:              uuid.Must(uuid.NewV7()).String(),
		PONumber:        req.PONumber,
		SupplierID:      req.SupplierID,
		Status:          "draft",
		TotalCost:       req.TotalCost,
		OrderDate:       req.OrderDate,
		ExpectedArrival: req.ExpectedArrival,
	}

	if err := ctl.db.WithContext(ctx).Create(&po).Error; err != nil {
		log.Printf("[admin.purchasing.create] ERROR insert failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to create purchase order", err))
		return
	}

	c.Set("resourceID", po.ID)

	log.Printf("[admin.purchasing.create] created id=%s po=%s supplier=%q", po.ID, po.PONumber, supplier.Name)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Purchase order created successfully", po))
}
