package models

import (
	"time"

	"gorm.io/datatypes"
)

// Resource types recorded by the activity logging middleware.
const (
	ResourceTypeProduct   = "product"
	ResourceTypeReturn    = "return"
	ResourceTypeAffiliate = "affiliate"
	ResourceTypeExpense   = "expense"
	ResourceTypePurchase  = "purchase_order"
)

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// ActivityLog records a mutating admin action.
type ActivityLog struct {
	ID           string         `json:"id" gorm:"type:uuid;primaryKey"`
	Action       string         `json:"action"` // created | updated | deleted
	ResourceType string         `json:"resource_type" gorm:"index"`
	ResourceID   string         `json:"resource_id"`
	Changes      datatypes.JSON `json:"changes,omitempty"`
	Status       string         `json:"status"`
	IPAddress    string         `json:"ip_address"`
	UserAgent    string         `json:"user_agent"`
	CreatedAt    time.Time      `json:"created_at" gorm:"index"`
}

func (ActivityLog) TableName() string { return "activity_logs" }
