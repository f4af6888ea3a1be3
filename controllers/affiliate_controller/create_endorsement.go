package affiliate_controller

import (
	"log"
	"net/http"

	"github.com/firhaanali/dashboard-dbusana-sub007/config"
	"github.com/firhaanali/dashboard-dbusana-sub007/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateEndorsement godoc
// @Summary Record an affiliate endorsement
// @Description Adds an endorsement campaign entry with its fee, sales and commission figures
// @Tags Admin - Affiliate
// @Accept json
// @Produce json
// @Param payload body models.CreateEndorsementRequest true "Endorsement"
// @Success 201 {object} models.ApiResponse{data=models.AffiliateEndorsement}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /affiliate/endorsements [post]
func (ctl *Controller) CreateEndorsement(c *gin.Context) {
	var req models.CreateEndorsementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[admin.affiliate.create] WARN invalid payload err=%v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponseWithDetails(c, "Invalid endorsement payload", err))
		return
	}

	row := models.AffiliateEndorsement{
		ID:             uuid.Must(uuid.NewV7()).String(),
		CampaignName:   req.CampaignName,
		InfluencerName: req.InfluencerName,
		Platform:       req.Platform,
		EndorseFee:     req.EndorseFee,
		ActualSales:    req.ActualSales,
		PaidCommission: req.PaidCommission,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := ctl.db.WithContext(ctx).Create(&row).Error; err != nil {
		log.Printf("[admin.affiliate.create] ERROR insert failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponseWithDetails(c, "Failed to record endorsement", err))
		return
	}

	c.Set("resourceID", row.ID)

	log.Printf("[admin.affiliate.create] created id=%s campaign=%q", row.ID, row.CampaignName)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Endorsement recorded successfully", row))
}
