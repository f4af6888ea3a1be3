package advertising_controller

import "gorm.io/gorm"

// Controller serves the advertising settlement endpoints.
type Controller struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{db: db}
}
