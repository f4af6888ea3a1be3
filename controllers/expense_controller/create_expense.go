package expense_controller

import (
	"log"
	"net/http"

	"github.com/firhaanali/dashboard-dbusana-sub007/config"
	"github.com/firhaanali/dashboard-dbusana-sub007/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateExpense godoc
// @Summary Record an expense
// @Description Adds a ledger entry. Payroll entries use the salaries_benefits category and feed the monthly trends.
// @Tags Admin - Expenses
// @Accept json
// @Produce json
// @Param payload body models.CreateExpenseRequest true "Expense"
// @Success 201 {object} models.ApiResponse{data=models.Expense}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /expenses [post]
func (ctl *Controller) CreateExpense(c *gin.Context) {
	var req models.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[admin.expense.create] WARN invalid payload err=%v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponseWithDetails(c, "Invalid expense payload", err))
		return
	}

	row := models.Expense{
		ID:          uuid.Must(uuid.NewV7()).String(),
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		ExpenseDate: req.ExpenseDate,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := ctl.db.WithContext(ctx).Create(&row).Error; err != nil {
		log.Printf("[admin.expense.create] ERROR insert failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to record expense", err))
		return
	}

	c.Set("resourceID", row.ID)

	log.Printf("[admin.expense.create] created id=%s category=%s amount=%.2f", row.ID, row.Category, row.Amount)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Expense recorded successfully", row))
}
