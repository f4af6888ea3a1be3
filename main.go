// @title D'Busana Dashboard API
// @version 1.0
// @description Business reporting backend for the D'Busana fashion dashboard
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/firhaanali/dashboard-dbusana-sub007/config"
	"github.com/firhaanali/dashboard-dbusana-sub007/controllers/activity_controller"
	"github.com/firhaanali/dashboard-dbusana-sub007/controllers/advertising_controller"
	"github.com/firhaanali/dashboard-dbusana-sub007/controllers/affiliate_controller"
	"github.com/firhaanali/dashboard-dbusana-sub007/controllers/dashboard_controller"
	"github.com/firhaanali/dashboard-dbusana-sub007/controllers/expense_controller"
	"github.com/firhaanali/dashboard-dbusana-sub007/controllers/product_controller"
	"github.com/firhaanali/dashboard-dbusana-sub007/controllers/purchase_controller"
	"github.com/firhaanali/dashboard-dbusana-sub007/controllers/returns_controller"
	"github.com/firhaanali/dashboard-dbusana-sub007/controllers/sales_controller"
	_ "github.com/firhaanali/dashboard-dbusana-sub007/docs"
	"github.com/firhaanali/dashboard-dbusana-sub007/middleware"
	"github.com/firhaanali/dashboard-dbusana-sub007/routes"
	"github.com/firhaanali/dashboard-dbusana-sub007/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	ctx := context.Background()

	// Connect to DB
	db, err := config.OpenDatabase(ctx)
	if err != nil {
		log.Fatalf("❌ Database connection failed: %v", err)
	}
	defer db.Close()
	log.Println("✅ Database connected")

	// Redis connection (rate limiting)
	redisClient, err := config.ConnectRedis(ctx)
	if err != nil {
		log.Fatalf("❌ Redis connection failed: %v", err)
	}
	defer redisClient.Close()
	log.Println("✅ Redis connected")

	activityLogs := services.NewActivityLogService(db.Gorm)

	// ✅ Configure CORS properly for all content types including PDFs
	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"}, // Expose these headers for downloads
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter(redisClient, 100, time.Minute))
	api.Use(middleware.ActivityLogger(activityLogs))

	routes.SetupDashboardRoutes(api, dashboard_controller.New(db.Gorm))
	routes.SetupSalesRoutes(api, sales_controller.New(db.Gorm))
	routes.SetupProductRoutes(api, product_controller.New(db.Gorm))
	routes.SetupReturnsRoutes(api, returns_controller.New(db.Gorm))
	routes.SetupAdvertisingRoutes(api, advertising_controller.New(db.Gorm))
	routes.SetupAffiliateRoutes(api, affiliate_controller.New(db.Gorm))
	routes.SetupExpenseRoutes(api, expense_controller.New(db.Gorm))
	routes.SetupPurchaseOrderRoutes(api, purchase_controller.New(db.Gorm))
	routes.SetupActivityRoutes(api, activity_controller.New(db.Gorm))
	log.Println("✅ Dashboard routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("🚀 Server is running on http://localhost:%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("❌ Server exited: %v", err)
	}
}
