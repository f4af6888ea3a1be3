package returns_controller

import (
	"log"
	"net/http"

	"github.com/firhaanali/dashboard-dbusana-sub007/config"
	"github.com/firhaanali/dashboard-dbusana-sub007/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateReturn godoc
// @Summary Record a return or cancellation
// @Description Adds a returned/cancelled order row
// @Tags Admin - Returns
// @Accept json
// @Produce json
// @Param payload body models.CreateReturnRequest true "Return"
// @Success 201 {object} models.ApiResponse{data=models.ReturnsCancellation}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /returns [post]
func (ctl *Controller) CreateReturn(c *gin.Context) {
	var req models.CreateReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[admin.return.create] WARN invalid payload err=%v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponseWithDetails(c, "Invalid return payload", err))
		return
	}

	if req.RestockStatus == "" {
		req.RestockStatus = "pending"
	}

	row := models.ReturnsCancellation{
		ID:             uuid.Must(uuid.NewV7()).String(),
		OrderID:        req.OrderID,
		Type:           req.Type,
		Reason:         req.Reason,
		ReturnedAmount: req.ReturnedAmount,
		RestockStatus:  req.RestockStatus,
		ReturnDate:     req.ReturnDate,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := ctl.db.WithContext(ctx).Create(&row).Error; err != nil {
		log.Printf("[admin.return.create] ERROR insert failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to record return", err))
		return
	}

	c.Set("resourceID", row.ID)

	log.Printf("[admin.return.create] created id=%s order=%s type=%s", row.ID, row.OrderID, row.Type)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Return recorded successfully", row))
}
