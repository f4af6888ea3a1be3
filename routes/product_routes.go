package routes

import (
	"github.com/firhaanali/dashboard-dbusana-sub007/controllers/product_controller"
	"github.com/gin-gonic/gin"
)

func SetupProductRoutes(rg *gin.RouterGroup, ctl *product_controller.Controller) {
	products := rg.Group("/products")

	products.GET("", ctl.GetProducts)
	products.GET("/stats", ctl.GetProductStats)
	products.POST("", ctl.CreateProduct)
	products.PATCH("/:id/stock", ctl.UpdateStock)
}
