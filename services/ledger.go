// services/ledger.go
package services

import (
	"time"

	"miednight-backend/models"

	"github.com/shopspring/decimal"
)

// PoolBalances holds one amount per cash pool.
type PoolBalances struct {
	Cash    decimal.Decimal `json:"cash"`
	Bank    decimal.Decimal `json:"bank"`
	Ewallet decimal.Decimal `json:"ewallet"`
}

func (b PoolBalances) Total() decimal.Decimal {
	return b.Cash.Add(b.Bank).Add(b.Ewallet)
}

// SynthesizedEntries builds the POS income rows for one business date: the
// paid cash total flows into the cash pool and the paid electronic total into
// the e-wallet pool, each only when above zero. These rows are regenerated
// identically on every read and never persisted, so re-reading can never
// duplicate them and a newly paid order shows up without a save step.
func SynthesizedEntries(trxs []models.Transaction, date string) []models.LedgerEntry {
	sales := DailySales(trxs, date)
	midday, _ := time.Parse("2006-01-02 15:04", date+" 12:00")

	var out []models.LedgerEntry
	if sales.CashTotal.IsPositive() {
		out = append(out, models.LedgerEntry{
			ID:          models.SynthesizedEntryPrefix + models.PoolCash + "-" + date,
			Date:        date,
			Description: "POS sales (cash)",
			Amount:      sales.CashTotal,
			Type:        models.EntryTypeIncome,
			Pool:        models.PoolCash,
			CreatedAt:   midday,
		})
	}
	if sales.ElectronicTotal.IsPositive() {
		out = append(out, models.LedgerEntry{
			ID:          models.SynthesizedEntryPrefix + models.PoolEwallet + "-" + date,
			Date:        date,
			Description: "POS sales (QRIS)",
			Amount:      sales.ElectronicTotal,
			Type:        models.EntryTypeIncome,
			Pool:        models.PoolEwallet,
			CreatedAt:   midday,
		})
	}
	return out
}

// DayLedger is the full ledger view for one date: synthesized POS entries
// first, then the manual entries in insertion order.
func DayLedger(trxs []models.Transaction, date string, manual []models.LedgerEntry) []models.LedgerEntry {
	entries := SynthesizedEntries(trxs, date)
	return append(entries, manual...)
}

// ClosingBalances folds a full ledger into per-pool ending balances:
// starting balance plus income into the pool minus expenses out of it.
func ClosingBalances(day models.StudioDay, entries []models.LedgerEntry) PoolBalances {
	b := PoolBalances{
		Cash:    day.CashBalance,
		Bank:    day.BankBalance,
		Ewallet: day.EwalletBalance,
	}
	for _, e := range entries {
		amount := e.Amount
		if e.Type == models.EntryTypeExpense {
			amount = amount.Neg()
		}
		switch e.Pool {
		case models.PoolCash:
			b.Cash = b.Cash.Add(amount)
		case models.PoolBank:
			b.Bank = b.Bank.Add(amount)
		case models.PoolEwallet:
			b.Ewallet = b.Ewallet.Add(amount)
		}
	}
	return b
}

// LedgerIncome sums all income entries of a ledger, across pools.
func LedgerIncome(entries []models.LedgerEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.Type == models.EntryTypeIncome {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// LedgerExpense sums all expense entries of a ledger, across pools.
func LedgerExpense(entries []models.LedgerEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if e.Type == models.EntryTypeExpense {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// RemoveEntry returns the ledger without the manual entry carrying the given
// id. Synthesized entries are skipped, so asking to remove one (or an id that
// does not exist) returns the ledger unchanged, not an error.
func RemoveEntry(entries []models.LedgerEntry, id string) []models.LedgerEntry {
	out := make([]models.LedgerEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID == id && !e.Synthesized() {
			continue
		}
		out = append(out, e)
	}
	return out
}

// ValidManualEntry validates user input for a manual ledger entry: a
// description is required and the amount must be strictly positive.
func ValidManualEntry(description string, amount decimal.Decimal, entryType, pool string) error {
	if description == "" {
		return ErrInvalidEntry
	}
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	switch entryType {
	case models.EntryTypeIncome, models.EntryTypeExpense:
	default:
		return ErrInvalidEntry
	}
	switch pool {
	case models.PoolCash, models.PoolBank, models.PoolEwallet:
	default:
		return ErrInvalidEntry
	}
	return nil
}
