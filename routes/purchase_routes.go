package routes

import (
	"github.com/firhaanali/dashboard-dbusana-sub007/controllers/purchase_controller"
	"github.com/gin-gonic/gin"
)

func SetupPurchaseOrderRoutes(rg *gin.RouterGroup, ctl *purchase_controller.Controller) {
	orders := rg.Group("/purchase-orders")

	orders.GET("", ctl.GetPurchaseOrders)
	orders.POST("", ctl.CreatePurchaseOrder)
	orders.PATCH("/:id/status", ctl.UpdatePOStatus)
}
