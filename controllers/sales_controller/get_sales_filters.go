package sales_controller

import (
	"database/sql"
	"log"
	"net/http"

	filter_cache "github.com/firhaanali/dashboard-dbusana-sub007/cache"
	"github.com/firhaanali/dashboard-dbusana-sub007/config"
	"github.com/firhaanali/dashboard-dbusana-sub007/models"
	"github.com/gin-gonic/gin"
)

// GetSalesFilters godoc
// @Summary Get sales filter metadata
// @Description Returns the known marketplaces and the sales date range for the dashboard filter dropdowns. Cached in-process for a few minutes.
// @Tags Admin - Sales
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.SalesFilterMetadata}
// @Failure 500 {object} models.ApiResponse
// @Router /sales/filters [get]
func (ctl *Controller) GetSalesFilters(c *gin.Context) {
	if data, ok := filter_cache.Get(); ok {
		log.Printf("[admin.sales.filters] cache hit")
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Sales filter metadata retrieved successfully", data))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var marketplaces []string
	if err := ctl.db.WithContext(ctx).
		Model(&models.SalesData{}).
		Distinct("marketplace").
		Where("marketplace <> ''").
		Order("marketplace ASC").
		Pluck("marketplace", &marketplaces).Error; err != nil {
		log.Printf("[admin.sales.filters] ERROR marketplaces query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to fetch filter metadata", err))
		return
	}

	var bounds struct {
		Earliest sql.NullTime
		Latest   sql.NullTime
	}
	if err := ctl.db.WithContext(ctx).
		Model(&models.SalesData{}).
		Select("MIN(created_time) AS earliest, MAX(created_time) AS latest").
		Scan(&bounds).Error; err != nil {
		log.Printf("[admin.sales.filters] ERROR date bounds query failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to fetch filter metadata", err))
		return
	}

	data := models.SalesFilterMetadata{Marketplaces: marketplaces}
	if bounds.Earliest.Valid {
		t := bounds.Earliest.Time
		data.EarliestSale = &t
	}
	if bounds.Latest.Valid {
		t := bounds.Latest.Time
		data.LatestSale = &t
	}

	filter_cache.Set(data)

	log.Printf("[admin.sales.filters] respond 200 marketplaces=%d", len(marketplaces))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Sales filter metadata retrieved successfully", data))
}
