package routes

import (
	"github.com/firhaanali/dashboard-dbusana-sub007/controllers/sales_controller"
	"github.com/gin-gonic/gin"
)

func SetupSalesRoutes(rg *gin.RouterGroup, ctl *sales_controller.Controller) {
	sales := rg.Group("/sales")

	sales.GET("", ctl.GetSales)
	sales.GET("/stats", ctl.GetSalesStats)
	sales.GET("/filters", ctl.GetSalesFilters)
}
