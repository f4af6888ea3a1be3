package advertising_controller

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

// GetAdvertising godoc
// @Summary Get advertising settlements (CMS)
// @Description Retrieve settled advertising charges with pagination. Supports filtering by settlement period and date range on the settlement time.
// @Tags Admin - Advertising
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(20)
// @Param period query string false "Settlement period (YYYY-MM)"
// @Param from query string false "Settled from (RFC3339 or YYYY-MM-DD)"
// @Param to query string false "Settled to (RFC3339 or YYYY-MM-DD)"
// @Success 200 {object} models.ApiResponse{data=[]models.AdvertisingSettlement,meta=models.Pagination}
// @Failure 500 {object} models.ApiResponse
// @Router /advertising [get]
func (ctl *Controller) GetAdvertising(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	period := strings.TrimSpace(c.Query("period"))
	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	db := ctl.db.WithContext(ctx).Model(&models.AdvertisingSettlement{})
	if period != "" {
		db = db.Where("settlement_period = ?", period)
	}
	if from != "" {
		db = db.Where("order_settled_time >= ?", from)
	}
	if to != "" {
		db = db.Where("order_settled_time <= ?", to)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		log.Printf("[admin.advertising] ERROR count failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to count advertising settlements", err))
		return
	}

	var rows []models.AdvertisingSettlement
	if err := db.
		Order("order_settled_time DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		log.Printf("[admin.advertising] ERROR query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to fetch advertising settlements", err))
		return
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Advertising settlements retrieved successfully", rows, meta))
}
