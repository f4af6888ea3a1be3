package returns_controller

import (
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/firhaanali/dashboard-dbusana-sub007/config"
	"github.com/firhaanali/dashboard-dbusana-sub007/models"
	"github.com/gin-gonic/gin"
)

// GetReturns godoc
// @Summary Get returns and cancellations (CMS)
// @Description Retrieve returned/cancelled order rows with pagination. Supports filtering by type and restock status.
// @Tags Admin - Returns
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(20)
// @Param type query string false "Filter by type (return, cancel)"
// @Param restock_status query string false "Filter by restock status (pending, restocked, written_off)"
// @Success 200 {object} models.ApiResponse{data=[]models.ReturnsCancellation,meta=models.Pagination}
// @Failure 500 {object} models.ApiResponse
// @Router /returns [get]
func (ctl *Controller) GetReturns(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	returnType := strings.TrimSpace(c.Query("type"))
	restockStatus := strings.TrimSpace(c.Query("restock_status"))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	db := ctl.db.WithContext(ctx).Model(&models.ReturnsCancellation{})
	if returnType != "" {
		db = db.Where("type = ?", returnType)
	}
	if restockStatus != "" {
		db = db.Where("restock_status = ?", restockStatus)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		log.Printf("[admin.returns] ERROR count failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to count returns", err))
		return
	}

	var rows []models.ReturnsCancellation
	if err := db.
		Order("return_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		log.Printf("[admin.returns] ERROR query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to fetch returns", err))
		return
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Returns retrieved successfully", rows, meta))
}
