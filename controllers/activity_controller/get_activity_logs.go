package activity_controller

import (
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/firhaanali/dashboard-dbusana-sub007/config"
	"github.com/firhaanali/dashboard-dbusana-sub007/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Controller serves the admin audit trail.
type Controller struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{db: db}
}

// GetActivityLogs godoc
// @Summary Get activity logs (CMS)
// @Description Retrieve the admin action audit trail with pagination. Supports filtering by resource type and action.
// @Tags Admin - Activity
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(20)
// @Param resource_type query string false "Filter by resource type"
// @Param action query string false "Filter by action (created, updated, deleted)"
// @Success 200 {object} models.ApiResponse{data=[]models.ActivityLog,meta=models.Pagination}
// @Failure 500 {object} models.ApiResponse
// @Router /activity-logs [get]
func (ctl *Controller) GetActivityLogs(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	resourceType := strings.TrimSpace(c.Query("resource_type"))
	action := strings.TrimSpace(c.Query("action"))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	db := ctl.db.WithContext(ctx).Model(&models.ActivityLog{})
	if resourceType != "" {
		db = db.Where("resource_type = ?", resourceType)
	}
	if action != "" {
		db = db.Where("action = ?", action)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		log.Printf("[admin.activity] ERROR count failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to count activity logs", err))
		return
	}

	var rows []models.ActivityLog
	if err := db.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		log.Printf("[admin.activity] ERROR query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to fetch activity logs", err))
		return
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Activity logs retrieved successfully", rows, meta))
}
