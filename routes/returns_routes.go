package routes

import (
	"github.com/firhaanali/dashboard-dbusana-sub007/controllers/returns_controller"
	"github.com/gin-gonic/gin"
)

func SetupReturnsRoutes(rg *gin.RouterGroup, ctl *returns_controller.Controller) {
	returns := rg.Group("/returns")

	returns.GET("", ctl.GetReturns)
	returns.GET("/stats", ctl.GetReturnsStats)
	returns.POST("", ctl.CreateReturn)
}
