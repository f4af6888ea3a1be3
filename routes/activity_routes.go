package routes

import (
	"github.com/firhaanali/dashboard-dbusana-sub007/controllers/activity_controller"
	"github.com/gin-gonic/gin"
)

func SetupActivityRoutes(rg *gin.RouterGroup, ctl *activity_controller.Controller) {
	rg.GET("/activity-logs", ctl.GetActivityLogs)
}
