package expense_controller

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

// GetExpenses godoc
// @Summary Get expenses (CMS)
// @Description Retrieve ledger entries with pagination. Supports filtering by category and expense date range.
// @Tags Admin - Expenses
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(20)
// @Param category query string false "Filter by category (e.g. salaries_benefits)"
// @Param from query string false "Expense date from (YYYY-MM-DD)"
// @Param to query string false "Expense date to (YYYY-MM-DD)"
// @Success 200 {object} models.ApiResponse{data=[]models.Expense,meta=models.Pagination}
// @Failure 500 {object} models.ApiResponse
// @Router /expenses [get]
func (ctl *Controller) GetExpenses(c *gin.Context) {
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
	from := strings.TrimSpace(c.Query("from"))
	to := strings.TrimSpace(c.Query("to"))

	ctx, cancel := config.WithTimeout()
	defer cancel()

	db := ctl.db.WithContext(ctx).Model(&models.Expense{})
	if category != "" {
		db = db.Where("category = ?", category)
	}
	if from != "" {
		db = db.Where("expense_date >= ?", from)
	}
	if to != "" {
		db = db.Where("expense_date <= ?", to)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		log.Printf("[admin.expenses] ERROR count failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to count expenses", err))
		return
	}

	var rows []models.Expense
	if err := db.
		Order("expense_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		log.Printf("[admin.expenses] ERROR query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to fetch expenses", err))
		return
	}

	meta := &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Expenses retrieved successfully", rows, meta))
}
