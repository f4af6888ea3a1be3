package models

import "time"

// AffiliateEndorsement is one influencer endorsement campaign entry.
type AffiliateEndorsement struct {
	ID             string     `json:"id" gorm:"type:uuid;primaryKey"`
	CampaignName   string     `json:"campaign_name"`
	InfluencerName string     `json:"influencer_name"`
	Platform       string     `json:"platform"` // tiktok, shopee, instagram, ...
	EndorseFee     float64    `json:"endorse_fee"`
	ActualSales    float64    `json:"actual_sales"`
	PaidCommission float64    `json:"paid_commission"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at" gorm:"index"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (AffiliateEndorsement) TableName() string { return "affiliate_endorsements" }

type CreateEndorsementRequest struct {
	CampaignName   string     `json:"campaign_name" binding:"required"`
	InfluencerName string     `json:"influencer_name" binding:"required"`
	Platform       string     `json:"platform" binding:"required"`
	EndorseFee     float64    `json:"endorse_fee" binding:"required,gt=0"`
	ActualSales    float64    `json:"actual_sales" binding:"gte=0"`
	PaidCommission float64    `json:"paid_commission" binding:"gte=0"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
}

type AffiliateStatsResponse struct {
	TotalCampaigns  int     `json:"total_campaigns"`
	TotalEndorseFee float64 `json:"total_endorse_fee"`
	TotalSales      float64 `json:"total_sales"`
	TotalCommission float64 `json:"total_commission"`
	ROI             float64 `json:"roi"` // actual sales / endorse fee, 0 when fee is 0
}
