// services/rollup.go
package services

import (
	"miednight-backend/models"

	"github.com/shopspring/decimal"
)

// The selection rule for any per-day figure: the current business date is
// always derived live from transactions, every other date reads the manually
// entered DailyLog fields. The two sources are never mixed for one date.

// DayRevenue returns one date's revenue under the selection rule.
func DayRevenue(logs []models.DailyLog, trxs []models.Transaction, date, today string) decimal.Decimal {
	if date == today {
		return DailySales(trxs, date).Total
	}
	if log, ok := findLog(logs, date); ok {
		return log.ManualRevenue
	}
	return decimal.Zero
}

// DayExpenses returns one date's expense total under the selection rule.
func DayExpenses(logs []models.DailyLog, expenses []models.Expense, date, today string) decimal.Decimal {
	if date == today {
		return ExpenseTotal(expenses, date)
	}
	if log, ok := findLog(logs, date); ok {
		return log.ManualExpenses
	}
	return decimal.Zero
}

// MonthlyRevenue iterates every calendar day of the month and accumulates
// per-day revenue under the selection rule.
func MonthlyRevenue(logs []models.DailyLog, trxs []models.Transaction, yearMonth, today string) decimal.Decimal {
	total := decimal.Zero
	for _, date := range MonthDates(yearMonth) {
		total = total.Add(DayRevenue(logs, trxs, date, today))
	}
	return total
}

// MonthlyExpenses mirrors MonthlyRevenue for expense totals.
func MonthlyExpenses(logs []models.DailyLog, expenses []models.Expense, yearMonth, today string) decimal.Decimal {
	total := decimal.Zero
	for _, date := range MonthDates(yearMonth) {
		total = total.Add(DayExpenses(logs, expenses, date, today))
	}
	return total
}

// MonthlySavings sums deposited savings across every log dated in the month.
// It scans the logs directly rather than iterating generated dates, so a log
// is counted whenever its month matches. Undeposited savings contribute zero.
func MonthlySavings(logs []models.DailyLog, yearMonth string) decimal.Decimal {
	total := decimal.Zero
	for _, log := range logs {
		if log.SavingsDeposited && MonthOf(log.Date) == yearMonth {
			total = total.Add(log.SavingsAmount)
		}
	}
	return total
}

// MonthlyProfit accumulates (POS income + manual income) - manual expenses
// over the full ledger of every day in the month.
func MonthlyProfit(trxs []models.Transaction, manual []models.LedgerEntry, yearMonth string) decimal.Decimal {
	byDate := make(map[string][]models.LedgerEntry)
	for _, e := range manual {
		byDate[e.Date] = append(byDate[e.Date], e)
	}
	profit := decimal.Zero
	for _, date := range MonthDates(yearMonth) {
		ledger := DayLedger(trxs, date, byDate[date])
		profit = profit.Add(LedgerIncome(ledger)).Sub(LedgerExpense(ledger))
	}
	return profit
}

// TargetProgress is 100 * revenue / target as a percentage. A zero or
// negative target yields zero. The returned value is unclamped; callers that
// render a progress bar clamp it with ClampProgress.
func TargetProgress(revenue, target decimal.Decimal) decimal.Decimal {
	if !target.IsPositive() {
		return decimal.Zero
	}
	return revenue.Mul(decimal.NewFromInt(100)).Div(target)
}

// ClampProgress limits a progress percentage to [0, 100] for display.
func ClampProgress(p decimal.Decimal) decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	if p.GreaterThan(hundred) {
		return hundred
	}
	if p.IsNegative() {
		return decimal.Zero
	}
	return p
}

// DaySummary is one row of the recent-days recap.
type DaySummary struct {
	Date             string          `json:"date"`
	Revenue          decimal.Decimal `json:"revenue"`
	Expenses         decimal.Decimal `json:"expenses"`
	Savings          decimal.Decimal `json:"savings"`
	SavingsDeposited bool            `json:"savingsDeposited"`
}

// RecapTotals are the column totals of a recap. Savings counts only days
// whose deposit flag is set; pending savings contribute zero.
type RecapTotals struct {
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Savings  decimal.Decimal `json:"savings"`
}

// RecentDaySummaries builds the recap of the n most recent calendar days
// ending at today, oldest first, under the selection rule.
func RecentDaySummaries(logs []models.DailyLog, trxs []models.Transaction, expenses []models.Expense, today string, n int) ([]DaySummary, RecapTotals) {
	totals := RecapTotals{Revenue: decimal.Zero, Expenses: decimal.Zero, Savings: decimal.Zero}
	var out []DaySummary
	for _, date := range RecentDates(today, n) {
		row := DaySummary{
			Date:     date,
			Revenue:  DayRevenue(logs, trxs, date, today),
			Expenses: DayExpenses(logs, expenses, date, today),
			Savings:  decimal.Zero,
		}
		if log, ok := findLog(logs, date); ok {
			row.SavingsDeposited = log.SavingsDeposited
			row.Savings = log.SavingsAmount
			if log.SavingsDeposited {
				totals.Savings = totals.Savings.Add(log.SavingsAmount)
			}
		}
		totals.Revenue = totals.Revenue.Add(row.Revenue)
		totals.Expenses = totals.Expenses.Add(row.Expenses)
		out = append(out, row)
	}
	return out, totals
}

func findLog(logs []models.DailyLog, date string) (models.DailyLog, bool) {
	for _, log := range logs {
		if log.Date == date {
			return log, true
		}
	}
	return models.DailyLog{}, false
}
