package routes

import (
	"github.com/firhaanali/dashboard-dbusana-sub007/controllers/dashboard_controller"
	"github.com/gin-gonic/gin"
)

func SetupDashboardRoutes(rg *gin.RouterGroup, ctl *dashboard_controller.Controller) {
	dashboard := rg.Group("/dashboard")

	dashboard.GET("/monthly-trends", ctl.GetMonthlyTrends)
	dashboard.GET("/monthly-trends/summary", ctl.GetTrendsSummary)
	dashboard.GET("/monthly-trends/export-pdf", ctl.ExportTrendsPDF)
}
