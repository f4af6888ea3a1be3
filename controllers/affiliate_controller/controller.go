package affiliate_controller

import "gorm.io/gorm"

// Controller serves the affiliate endorsement endpoints.
type Controller struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{db: db}
}
