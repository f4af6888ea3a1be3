package affiliate_controller

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

// GetEndorsements godoc
// @Summary Get affiliate endorsements (CMS)
// @Description Retrieve endorsement campaigns with pagination. Supports filtering by platform and free-text search on campaign and influencer name.
// @Tags Admin - Affiliate
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(20)
// @Param platform query string false "Filter by platform"
// @Param q query string false "Search by campaign or influencer name"
// @Success 200 {object} models.ApiResponse{data=[]models.AffiliateEndorsement,meta=models.Pagination}
// @Failure 500 {object} models.ApiResponse
// @Router /affiliate/endorsements [get]
func (ctl *Controller) GetEndorsements(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	platform := strings.TrimSpace(c.Query("platform"))
	q := strings.TrimSpace(c.Query("q"))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	db := ctl.db.WithContext(ctx).Model(&models.AffiliateEndorsement{})
	if platform != "" {
		db = db.Where("platform = ?", platform)
	}
	if q != "" {
		like := "%" + q + "%"
		db = db.Where("campaign_name ILIKE ? OR influencer_name ILIKE ?", like, like)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		log.Printf("[admin.affiliate] ERROR count failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to count endorsements", err))
		return
	}

	var rows []models.AffiliateEndorsement
	if err := db.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		log.Printf("[admin.affiliate] ERROR query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to fetch endorsements", err))
		return
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Endorsements retrieved successfully", rows, meta))
}
