package product_controller

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

// GetProducts godoc
// @Summary Get products (CMS)
// @Description Retrieve catalog products with pagination. Supports filtering by category, stock state and free-text search on code and name.
// @Tags Admin - Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(20)
// @Param category query string false "Filter by category"
// @Param stock query string false "Filter by stock state (low, out)"
// @Param q query string false "Search by product code or name"
// @Success 200 {object} models.ApiResponse{data=[]models.ProductData,meta=models.Pagination}
// @Failure 500 {object} models.ApiResponse
// @Router /products [get]
func (ctl *Controller) GetProducts(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	category := strings.TrimSpace(c.Query("category"))
	stock := strings.TrimSpace(c.Query("stock"))
	q := strings.TrimSpace(c.Query("q"))

	log.Printf("[admin.products] params page=%d limit=%d category=%q stock=%q q=%q", page, limit, category, stock, q)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	db := ctl.db.WithContext(ctx).Model(&models.ProductData{})

	if category != "" {
		db = db.Where("category = ?", category)
	}
	switch stock {
	case "low":
		db = db.Where("stock_quantity > 0 AND stock_quantity <= min_stock")
	case "out":
		db = db.Where("stock_quantity = 0")
	}
	if q != "" {
		like := "%" + q + "%"
		db = db.Where("product_code ILIKE ? OR product_name ILIKE ?", like, like)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		log.Printf("[admin.products] ERROR count failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to count products", err))
		return
	}

	var products []models.ProductData
	if err := db.
		Order("product_name ASC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error; err != nil {
		log.Printf("[admin.products] ERROR query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to fetch products", err))
		return
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Products retrieved successfully", products, meta))
}
