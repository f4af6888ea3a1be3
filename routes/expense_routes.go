package routes

import (
	"github.com/firhaanali/dashboard-dbusana-sub007/controllers/expense_controller"
	"github.com/gin-gonic/gin"
)

func SetupExpenseRoutes(rg *gin.RouterGroup, ctl *expense_controller.Controller) {
	expenses := rg.Group("/expenses")

	expenses.GET("", ctl.GetExpenses)
	expenses.POST("", ctl.CreateExpense)
}
