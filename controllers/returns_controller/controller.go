package returns_controller

import "gorm.io/gorm"

// Controller serves the returns and cancellations endpoints.
type Controller struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{db: db}
}
