package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is a manual cash-out entry against a business date.
type Expense struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Description string          `gorm:"not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	Date        string          `gorm:"size:10;index;not null" json:"date"` // YYYY-MM-DD business date
	CreatedAt   time.Time       `json:"createdAt"`
}
