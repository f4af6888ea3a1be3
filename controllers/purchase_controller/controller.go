package purchase_controller

import "gorm.io/gorm"

// Controller serves the purchasing endpoints.
type Controller struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{db: db}
}
