package routes

import (
	"github.com/firhaanali/dashboard-dbusana-sub007/controllers/affiliate_controller"
	"github.com/gin-gonic/gin"
)

func SetupAffiliateRoutes(rg *gin.RouterGroup, ctl *affiliate_controller.Controller) {
	affiliate := rg.Group("/affiliate")

	affiliate.GET("/endorsements", ctl.GetEndorsements)
	affiliate.POST("/endorsements", ctl.CreateEndorsement)
	affiliate.GET("/stats", ctl.GetAffiliateStats)
}
