package sales_controller

import "gorm.io/gorm"

// Controller serves the marketplace sales endpoints.
type Controller struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{db: db}
}
