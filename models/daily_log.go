package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailyLog is the per-date bookkeeping record. For past dates the manual
// figures are authoritative; for the current business date totals are always
// derived from transactions instead. At most one row per date; an absent row
// means all-zero/false.
type DailyLog struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Date string    `gorm:"size:10;uniqueIndex;not null" json:"date"`

	ManualRevenue  decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"manualRevenue"`
	ManualExpenses decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"manualExpenses"`

	SavingsDeposited bool            `gorm:"default:false" json:"savingsDeposited"`
	SavingsAmount    decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"savingsAmount"`

	// Locks the day against further order entry
	IsClosed bool `gorm:"default:false" json:"isClosed"`

	CashReconciled bool            `gorm:"default:false" json:"cashReconciled"`
	ActualCash     decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"actualCash"`
	CashDifference decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"cashDifference"`
}

// DailyCash holds the starting cash float for the drawer reconciliation.
type DailyCash struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Date          string          `gorm:"size:10;uniqueIndex;not null" json:"date"`
	StartingFloat decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"startingFloat"`
}
