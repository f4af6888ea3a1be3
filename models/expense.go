package models

import "time"

// Expense category used by the payroll aggregate in the monthly trends.
const ExpenseCategorySalaries = "salaries_benefits"

// Expense is a generic ledger entry, queryable by category and date.
type Expense struct {
	ID          string    `json:"id" gorm:"type:uuid;primaryKey"`
	Category    string    `json:"category" gorm:"index"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	ExpenseDate time.Time `json:"expense_date" gorm:"index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Expense) TableName() string { return "expenses" }

type CreateExpenseRequest struct {
	Category    string    `json:"category" binding:"required"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount" binding:"required,gt=0"`
	ExpenseDate time.Time `json:"expense_date" binding:"required"`
}
