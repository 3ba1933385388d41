package services

import (
	"testing"

	"miednight-backend/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDayLedgerSynthesizesPOSEntries(t *testing.T) {
	date := "2026-08-27"
	trxs := []models.Transaction{
		paidTrx(date, models.PaymentMethodCash, 75000),
		paidTrx(date, models.PaymentMethodElectronic, 30000),
	}

	ledger := DayLedger(trxs, date, nil)

	assert.Len(t, ledger, 2)
	assert.Equal(t, "pos-cash-2026-08-27", ledger[0].ID)
	assert.Equal(t, models.PoolCash, ledger[0].Pool)
	assert.Equal(t, models.EntryTypeIncome, ledger[0].Type)
	assert.True(t, ledger[0].Amount.Equal(decimal.NewFromInt(75000)))
	assert.True(t, ledger[0].Synthesized())

	assert.Equal(t, "pos-ewallet-2026-08-27", ledger[1].ID)
	assert.Equal(t, models.PoolEwallet, ledger[1].Pool)
	assert.True(t, ledger[1].Amount.Equal(decimal.NewFromInt(30000)))
}

func TestDayLedgerOmitsZeroPOSEntries(t *testing.T) {
	date := "2026-08-27"

	// No sales at all: no synthesized rows
	assert.Empty(t, DayLedger(nil, date, nil))

	// Cash only: no e-wallet row
	trxs := []models.Transaction{paidTrx(date, models.PaymentMethodCash, 10000)}
	ledger := DayLedger(trxs, date, nil)
	assert.Len(t, ledger, 1)
	assert.Equal(t, models.PoolCash, ledger[0].Pool)
}

func TestDayLedgerManualEntriesFollowInInsertionOrder(t *testing.T) {
	date := "2026-08-27"
	trxs := []models.Transaction{paidTrx(date, models.PaymentMethodCash, 10000)}
	manual := []models.LedgerEntry{
		{ID: "a", Date: date, Description: "gas refill", Amount: decimal.NewFromInt(22000), Type: models.EntryTypeExpense, Pool: models.PoolCash},
		{ID: "b", Date: date, Description: "catering deposit", Amount: decimal.NewFromInt(150000), Type: models.EntryTypeIncome, Pool: models.PoolBank},
	}

	ledger := DayLedger(trxs, date, manual)

	assert.Len(t, ledger, 3)
	assert.True(t, ledger[0].Synthesized())
	assert.Equal(t, "a", ledger[1].ID)
	assert.Equal(t, "b", ledger[2].ID)
	assert.False(t, ledger[1].Synthesized())
}

func TestDayLedgerIsIdempotent(t *testing.T) {
	// Two reads with no intervening writes yield identical entries and
	// identical balances
	date := "2026-08-27"
	trxs := []models.Transaction{
		paidTrx(date, models.PaymentMethodCash, 75000),
		paidTrx(date, models.PaymentMethodElectronic, 30000),
	}
	manual := []models.LedgerEntry{
		{ID: "a", Date: date, Description: "gas refill", Amount: decimal.NewFromInt(10000), Type: models.EntryTypeExpense, Pool: models.PoolCash},
	}
	day := models.StudioDay{Date: date}

	first := DayLedger(trxs, date, manual)
	second := DayLedger(trxs, date, manual)

	assert.Equal(t, first, second)
	assert.Equal(t, ClosingBalances(day, first), ClosingBalances(day, second))
}

func TestClosingBalancesScenario(t *testing.T) {
	// Synthesized cash income 75000, manual cash expense 10000, starting
	// cash 0: ending cash = 65000
	date := "2026-08-27"
	trxs := []models.Transaction{paidTrx(date, models.PaymentMethodCash, 75000)}
	manual := []models.LedgerEntry{
		{ID: "a", Date: date, Description: "gas refill", Amount: decimal.NewFromInt(10000), Type: models.EntryTypeExpense, Pool: models.PoolCash},
	}
	day := models.StudioDay{Date: date}

	balances := ClosingBalances(day, DayLedger(trxs, date, manual))

	assert.True(t, balances.Cash.Equal(decimal.NewFromInt(65000)), "cash = %s", balances.Cash)
	assert.True(t, balances.Bank.IsZero())
	assert.True(t, balances.Ewallet.IsZero())
	assert.True(t, balances.Total().Equal(decimal.NewFromInt(65000)))
}

func TestClosingBalancesRoutesPerPool(t *testing.T) {
	date := "2026-08-27"
	day := models.StudioDay{
		Date:           date,
		CashBalance:    decimal.NewFromInt(100000),
		BankBalance:    decimal.NewFromInt(500000),
		EwalletBalance: decimal.NewFromInt(50000),
	}
	entries := []models.LedgerEntry{
		{ID: "a", Date: date, Amount: decimal.NewFromInt(20000), Type: models.EntryTypeIncome, Pool: models.PoolCash},
		{ID: "b", Date: date, Amount: decimal.NewFromInt(30000), Type: models.EntryTypeExpense, Pool: models.PoolBank},
		{ID: "c", Date: date, Amount: decimal.NewFromInt(15000), Type: models.EntryTypeIncome, Pool: models.PoolEwallet},
	}

	balances := ClosingBalances(day, entries)

	assert.True(t, balances.Cash.Equal(decimal.NewFromInt(120000)))
	assert.True(t, balances.Bank.Equal(decimal.NewFromInt(470000)))
	assert.True(t, balances.Ewallet.Equal(decimal.NewFromInt(65000)))
}

func TestLedgerIncomeAndExpense(t *testing.T) {
	entries := []models.LedgerEntry{
		{Amount: decimal.NewFromInt(75000), Type: models.EntryTypeIncome, Pool: models.PoolCash},
		{Amount: decimal.NewFromInt(150000), Type: models.EntryTypeIncome, Pool: models.PoolBank},
		{Amount: decimal.NewFromInt(10000), Type: models.EntryTypeExpense, Pool: models.PoolCash},
	}

	assert.True(t, LedgerIncome(entries).Equal(decimal.NewFromInt(225000)))
	assert.True(t, LedgerExpense(entries).Equal(decimal.NewFromInt(10000)))
}

func TestRemoveEntryDeletesOnlyManualEntries(t *testing.T) {
	date := "2026-08-27"
	trxs := []models.Transaction{paidTrx(date, models.PaymentMethodCash, 75000)}
	manual := []models.LedgerEntry{
		{ID: "a", Date: date, Description: "gas refill", Amount: decimal.NewFromInt(10000), Type: models.EntryTypeExpense, Pool: models.PoolCash},
		{ID: "b", Date: date, Description: "catering deposit", Amount: decimal.NewFromInt(150000), Type: models.EntryTypeIncome, Pool: models.PoolBank},
	}
	ledger := DayLedger(trxs, date, manual)

	remaining := RemoveEntry(ledger, "a")
	assert.Len(t, remaining, 2)
	assert.True(t, remaining[0].Synthesized())
	assert.Equal(t, "b", remaining[1].ID)
}

func TestRemoveEntryIgnoresStaleAndSynthesizedIDs(t *testing.T) {
	date := "2026-08-27"
	trxs := []models.Transaction{paidTrx(date, models.PaymentMethodCash, 75000)}
	manual := []models.LedgerEntry{
		{ID: "a", Date: date, Description: "gas refill", Amount: decimal.NewFromInt(10000), Type: models.EntryTypeExpense, Pool: models.PoolCash},
	}
	ledger := DayLedger(trxs, date, manual)

	// An id that no longer exists leaves the ledger unchanged
	assert.Equal(t, ledger, RemoveEntry(ledger, "gone"))

	// POS rows are regenerated on every read and cannot be removed
	assert.Equal(t, ledger, RemoveEntry(ledger, "pos-cash-2026-08-27"))
}

func TestValidManualEntry(t *testing.T) {
	ok := decimal.NewFromInt(10000)

	assert.NoError(t, ValidManualEntry("gas refill", ok, models.EntryTypeExpense, models.PoolCash))

	assert.ErrorIs(t, ValidManualEntry("", ok, models.EntryTypeExpense, models.PoolCash), ErrInvalidEntry)
	assert.ErrorIs(t, ValidManualEntry("gas", decimal.Zero, models.EntryTypeExpense, models.PoolCash), ErrInvalidAmount)
	assert.ErrorIs(t, ValidManualEntry("gas", decimal.NewFromInt(-5), models.EntryTypeExpense, models.PoolCash), ErrInvalidAmount)
	assert.ErrorIs(t, ValidManualEntry("gas", ok, "transfer", models.PoolCash), ErrInvalidEntry)
	assert.ErrorIs(t, ValidManualEntry("gas", ok, models.EntryTypeIncome, "wallet"), ErrInvalidEntry)
}
