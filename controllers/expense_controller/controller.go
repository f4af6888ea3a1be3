package expense_controller

import "gorm.io/gorm"

// Controller serves the expense ledger endpoints.
type Controller struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Controller {
	return &Controller{db: db}
}
