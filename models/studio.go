package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	PoolCash    = "cash"
	PoolBank    = "bank"
	PoolEwallet = "ewallet" // DANA at the stall

	EntryTypeIncome  = "income"
	EntryTypeExpense = "expense"

	// Prefix reserved for ledger entries synthesized from POS sales. Entries
	// with this prefix are never persisted.
	SynthesizedEntryPrefix = "pos-"
)

// StudioDay holds the starting balances of the three cash pools for one
// business date, plus the sales target for that day. Closing balances are
// derived, never stored.
type StudioDay struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Date string    `gorm:"size:10;uniqueIndex;not null" json:"date"`

	CashBalance    decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"cashBalance"`
	BankBalance    decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"bankBalance"`
	EwalletBalance decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"ewalletBalance"`

	DailyTarget decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"dailyTarget"`
}

// LedgerEntry is one dated income/expense movement against a pool. Only
// manual entries are persisted; POS income rows are synthesized on read with
// IDs like "pos-cash-2026-08-28".
type LedgerEntry struct {
	ID          string          `gorm:"primary_key;size:64" json:"id"`
	Date        string          `gorm:"size:10;index;not null" json:"date"`
	Description string          `gorm:"not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	Type        string          `gorm:"type:varchar(10);not null" json:"type"` // 'income' or 'expense'
	Pool        string          `gorm:"type:varchar(10);not null" json:"pool"` // 'cash', 'bank' or 'ewallet'
	CreatedAt   time.Time       `json:"createdAt"`
}

// Synthesized reports whether the entry is a generated POS income row.
func (e LedgerEntry) Synthesized() bool {
	return len(e.ID) >= len(SynthesizedEntryPrefix) && e.ID[:len(SynthesizedEntryPrefix)] == SynthesizedEntryPrefix
}

// StudioMonth holds the revenue target for one calendar month.
type StudioMonth struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	YearMonth     string          `gorm:"size:7;uniqueIndex;not null" json:"yearMonth"` // YYYY-MM
	MonthlyTarget decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"monthlyTarget"`
}
