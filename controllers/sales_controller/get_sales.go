package sales_controller

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

// GetSales godoc
// @Summary Get sales (CMS)
// @Description Retrieve marketplace sales rows with pagination. Supports filtering by marketplace, date range and free-text search on order id, SKU and product name.
// @Tags Admin - Sales
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(20)
// @Param marketplace query string false "Filter by marketplace"
// @Param from query string false "Created from (RFC3339 or YYYY-MM-DD)"
// @Param to query string false "Created to (RFC3339 or YYYY-MM-DD)"
// @Param q query string false "Search by order id, seller SKU or product name"
// @Success 200 {object} models.ApiResponse{data=[]models.SalesListRow,meta=models.Pagination}
// @Failure 500 {object} models.ApiResponse
// @Router /sales [get]
func (ctl *Controller) GetSales(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		log.Printf("[admin.sales] WARN invalid page=%q -> default 1", c.Query("page"))
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		log.Printf("[admin.sales] WARN limit out of range (%q) -> set 20", c.Query("limit"))
		limit = 20
	}
	offset := (page - 1) * limit

	marketplace := strings.TrimSpace(c.Query("marketplace"))
	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))
	q := strings.TrimSpace(c.Query("q"))

	log.Printf("[admin.sales] params page=%d limit=%d marketplace=%q from=%q to=%q q=%q", page, limit, marketplace, from, to, q)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	db := ctl.db.WithContext(ctx).Model(&models.SalesData{})

	if marketplace != "" {
		db = db.Where("marketplace = ?", marketplace)
	}
	if from != "" {
		db = db.Where("created_time >= ?", from)
	}
	if to != "" {
		db = db.Where("created_time <= ?", to)
	}
	if q != "" {
		like := "%" + q + "%"
		db = db.Where("order_id ILIKE ? OR seller_sku ILIKE ? OR product_name ILIKE ?", like, like, like)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		log.Printf("[admin.sales] ERROR count failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to count sales", err))
		return
	}

	var rows []models.SalesListRow
	if err := db.
		Select("id, order_id, seller_sku, product_name, marketplace, quantity, order_amount, total_revenue, settlement_amount, created_time").
		Order("created_time DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error; err != nil {
		log.Printf("[admin.sales] ERROR query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to fetch sales", err))
		return
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}

	log.Printf("[admin.sales] respond 200 rows=%d total=%d", len(rows), total)

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Sales retrieved successfully", rows, meta))
}
