package routes

import (
	"github.com/firhaanali/dashboard-dbusana-sub007/controllers/advertising_controller"
	"github.com/gin-gonic/gin"
)

func SetupAdvertisingRoutes(rg *gin.RouterGroup, ctl *advertising_controller.Controller) {
	advertising := rg.Group("/advertising")

	advertising.GET("", ctl.GetAdvertising)
	advertising.GET("/stats", ctl.GetAdvertisingStats)
}
