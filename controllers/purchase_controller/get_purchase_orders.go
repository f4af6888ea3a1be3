package purchase_controller

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

// GetPurchaseOrders godoc
// @Summary Get purchase orders (CMS)
// @Description Retrieve purchase orders with supplier names and pagination. Supports filtering by status and free-text search on PO number and supplier name.
// @Tags Admin - Purchasing
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(20)
// @Param status query string false "Filter by status (draft, ordered, received, cancelled)"
// @Param q query string false "Search by PO number or supplier name"
// @Success 200 {object} models.ApiResponse{data=[]models.PurchaseOrderRow,meta=models.Pagination}
// @Failure 500 {object} models.ApiResponse
// @Router /purchase-orders [get]
func (ctl *Controller) GetPurchaseOrders(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	status := strings.TrimSpace(c.Query("status"))
	q := strings.TrimSpace(c.Query("q"))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	db := ctl.db.WithContext(ctx).
		Table("purchase_orders po").
		Joins("LEFT JOIN suppliers s ON s.id = po.supplier_id")

	if status != "" {
		db = db.Where("po.status = ?", status)
	}
	if q != "" {
		like := "%" + q + "%"
		db = db.Where("po.po_number ILIKE ? OR s.name ILIKE ?", like, like)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		log.Printf("[admin.purchasing] ERROR count failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to count purchase orders", err))
		return
	}

	var rows []models.PurchaseOrderRow
	if err := db.
		Select("po.*, COALESCE(s.name, '') AS supplier_name").
		Order("po.order_date DESC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error; err != nil {
		log.Printf("[admin.purchasing] ERROR query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to fetch purchase orders", err))
		return
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Purchase orders retrieved successfully", rows, meta))
}
