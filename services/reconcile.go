// services/reconcile.go
package services

import (
	"miednight-backend/models"

	"github.com/shopspring/decimal"
)

// DrawerStatus is the cash drawer state for one business date.
type DrawerStatus struct {
	Date          string          `json:"date"`
	StartingFloat decimal.Decimal `json:"startingFloat"`
	CashSales     decimal.Decimal `json:"cashSales"`
	Expenses      decimal.Decimal `json:"expenses"`
	Expected      decimal.Decimal `json:"expected"`

	Reconciled bool            `json:"reconciled"`
	ActualCash decimal.Decimal `json:"actualCash"`
	Difference decimal.Decimal `json:"difference"`
}

// ExpectedCash is what should be in the drawer at close: the starting float
// plus the day's cash sales minus the day's expenses.
func ExpectedCash(startingFloat, cashSales, expenses decimal.Decimal) decimal.Decimal {
	return startingFloat.Add(cashSales).Sub(expenses)
}

// DrawerStatusFor assembles the drawer state from the day's records. The
// reconciliation fields come from the DailyLog; actual and difference stay
// visible after a reset so the user can see their last count while redoing it.
func DrawerStatusFor(date string, cash models.DailyCash, log models.DailyLog, trxs []models.Transaction, expenses []models.Expense) DrawerStatus {
	sales := DailySales(trxs, date)
	spent := ExpenseTotal(expenses, date)
	return DrawerStatus{
		Date:          date,
		StartingFloat: cash.StartingFloat,
		CashSales:     sales.CashTotal,
		Expenses:      spent,
		Expected:      ExpectedCash(cash.StartingFloat, sales.CashTotal, spent),
		Reconciled:    log.CashReconciled,
		ActualCash:    log.ActualCash,
		Difference:    log.CashDifference,
	}
}

// ValidAmount reports whether d can be used as a monetary input (>= 0).
func ValidAmount(d decimal.Decimal) bool {
	return !d.IsNegative()
}
