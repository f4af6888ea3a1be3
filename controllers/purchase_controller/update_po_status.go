package purchase_controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/firhaanali/dashboard-dbusana-sub007/config"
	"github.com/firhaanali/dashboard-dbusana-sub007/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UpdatePOStatus godoc
// @Summary Update purchase order status
// @Description Moves a purchase order to a new status. Receiving a PO stamps received_at.
// @Tags Admin - Purchasing
// @Accept json
// @Produce json
// @Param id path string true "Purchase order ID"
// @Param payload body models.UpdatePOStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse{data=models.PurchaseOrder}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /purchase-orders/{id}/status [patch]
func (ctl *Controller) UpdatePOStatus(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid purchase order ID"))
		return
	}

	var req models.UpdatePOStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponseWithDetails(c, "Invalid status payload", err))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var po models.PurchaseOrder
	if err := ctl.db.WithContext(ctx).Where("id = ?", id).First(&po).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Purchase order not found"))
			return
		}
		log.Printf("[admin.purchasing.status] ERROR lookup failed id=%s err=%v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to update purchase order", err))
		return
	}

	updates := map[string]any{"status": req.Status}
	if req.Status == "received" && po.ReceivedAt == nil {
		now := time.Now().UTC()
		updates["received_at"] = now
		po.ReceivedAt = &now
	}
	previous := po.Status
	po.Status = req.Status

	if err := ctl.db.WithContext(ctx).Model(&po).Updates(updates).Error; err != nil {
		log.Printf("[admin.purchasing.status] ERROR update failed id=%s err=%v", id, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to update purchase order", err))
		return
	}

	c.Set("resourceID", po.ID)

	log.Printf("[admin.purchasing.status] updated id=%s status %s -> %s", id, previous, po.Status)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Purchase order status updated successfully", po))
}
