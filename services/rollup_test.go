package services

import (
	"testing"

	"miednight-backend/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDayRevenueSelectionRule(t *testing.T) {
	today := "2026-08-27"
	trxs := []models.Transaction{paidTrx(today, models.PaymentMethodCash, 60000)}
	logs := []models.DailyLog{
		// A manual figure for today must be ignored: today is always derived
		{Date: today, ManualRevenue: decimal.NewFromInt(999999)},
		{Date: "2026-08-26", ManualRevenue: decimal.NewFromInt(45000)},
	}

	assert.True(t, DayRevenue(logs, trxs, today, today).Equal(decimal.NewFromInt(60000)))
	assert.True(t, DayRevenue(logs, trxs, "2026-08-26", today).Equal(decimal.NewFromInt(45000)))
	assert.True(t, DayRevenue(logs, trxs, "2026-08-25", today).IsZero())
}

func TestMonthlyRevenueEqualsSumOfDays(t *testing.T) {
	today := "2026-08-27"
	trxs := []models.Transaction{
		paidTrx(today, models.PaymentMethodCash, 60000),
		paidTrx(today, models.PaymentMethodElectronic, 15000),
	}
	logs := []models.DailyLog{
		{Date: "2026-08-01", ManualRevenue: decimal.NewFromInt(100000)},
		{Date: "2026-08-15", ManualRevenue: decimal.NewFromInt(80000)},
		{Date: "2026-07-31", ManualRevenue: decimal.NewFromInt(70000)}, // other month
	}

	monthly := MonthlyRevenue(logs, trxs, "2026-08", today)

	// Independently: per-day sum under the same selection rule
	expected := decimal.Zero
	for _, date := range MonthDates("2026-08") {
		expected = expected.Add(DayRevenue(logs, trxs, date, today))
	}
	assert.True(t, monthly.Equal(expected))
	assert.True(t, monthly.Equal(decimal.NewFromInt(255000)), "monthly = %s", monthly)
}

func TestMonthlyExpensesSelectionRule(t *testing.T) {
	today := "2026-08-27"
	expenses := []models.Expense{{Date: today, Amount: decimal.NewFromInt(20000)}}
	logs := []models.DailyLog{
		{Date: "2026-08-10", ManualExpenses: decimal.NewFromInt(30000)},
	}

	assert.True(t, MonthlyExpenses(logs, expenses, "2026-08", today).Equal(decimal.NewFromInt(50000)))
}

func TestMonthlySavingsCountsOnlyDeposited(t *testing.T) {
	logs := []models.DailyLog{
		{Date: "2026-08-05", SavingsDeposited: true, SavingsAmount: decimal.NewFromInt(25000)},
		{Date: "2026-08-06", SavingsDeposited: false, SavingsAmount: decimal.NewFromInt(40000)},
		{Date: "2026-08-07", SavingsDeposited: true, SavingsAmount: decimal.NewFromInt(10000)},
		{Date: "2026-07-30", SavingsDeposited: true, SavingsAmount: decimal.NewFromInt(99000)},
	}

	assert.True(t, MonthlySavings(logs, "2026-08").Equal(decimal.NewFromInt(35000)))
}

func TestSavingsToggleRoundTrip(t *testing.T) {
	logs := []models.DailyLog{
		{Date: "2026-08-05", SavingsDeposited: true, SavingsAmount: decimal.NewFromInt(25000)},
	}
	before := MonthlySavings(logs, "2026-08")

	logs[0].SavingsDeposited = false
	assert.True(t, MonthlySavings(logs, "2026-08").IsZero())

	logs[0].SavingsDeposited = true
	assert.True(t, MonthlySavings(logs, "2026-08").Equal(before))
}

func TestMonthlyProfit(t *testing.T) {
	// POS income counts for every day of the month, manual income adds,
	// manual expenses subtract
	trxs := []models.Transaction{
		paidTrx("2026-08-10", models.PaymentMethodCash, 75000),
		paidTrx("2026-08-11", models.PaymentMethodElectronic, 25000),
	}
	manual := []models.LedgerEntry{
		{ID: "a", Date: "2026-08-10", Amount: decimal.NewFromInt(150000), Type: models.EntryTypeIncome, Pool: models.PoolBank},
		{ID: "b", Date: "2026-08-11", Amount: decimal.NewFromInt(30000), Type: models.EntryTypeExpense, Pool: models.PoolCash},
	}

	profit := MonthlyProfit(trxs, manual, "2026-08")

	// (75000 + 25000 + 150000) - 30000
	assert.True(t, profit.Equal(decimal.NewFromInt(220000)), "profit = %s", profit)
}

func TestTargetProgressScenario(t *testing.T) {
	// Target 1000000, revenue 250000: progress 25.0%
	progress := TargetProgress(decimal.NewFromInt(250000), decimal.NewFromInt(1000000))
	assert.True(t, progress.Equal(decimal.NewFromInt(25)), "progress = %s", progress)

	// Under 100 the clamp changes nothing
	assert.True(t, ClampProgress(progress).Equal(progress))
}

func TestTargetProgressUnclamped(t *testing.T) {
	progress := TargetProgress(decimal.NewFromInt(1500000), decimal.NewFromInt(1000000))
	assert.True(t, progress.Equal(decimal.NewFromInt(150)))
	assert.True(t, ClampProgress(progress).Equal(decimal.NewFromInt(100)))
}

func TestTargetProgressZeroTarget(t *testing.T) {
	assert.True(t, TargetProgress(decimal.NewFromInt(250000), decimal.Zero).IsZero())
}

func TestRecentDaySummaries(t *testing.T) {
	today := "2026-08-27"
	trxs := []models.Transaction{paidTrx(today, models.PaymentMethodCash, 60000)}
	expenses := []models.Expense{{Date: today, Amount: decimal.NewFromInt(5000)}}
	logs := []models.DailyLog{
		{Date: "2026-08-26", ManualRevenue: decimal.NewFromInt(45000), ManualExpenses: decimal.NewFromInt(8000), SavingsDeposited: true, SavingsAmount: decimal.NewFromInt(10000)},
		{Date: "2026-08-25", ManualRevenue: decimal.NewFromInt(30000), SavingsDeposited: false, SavingsAmount: decimal.NewFromInt(20000)},
	}

	summaries, totals := RecentDaySummaries(logs, trxs, expenses, today, 3)

	assert.Len(t, summaries, 3)
	// Oldest first, ending today
	assert.Equal(t, "2026-08-25", summaries[0].Date)
	assert.Equal(t, "2026-08-27", summaries[2].Date)

	// Today derived, past days manual
	assert.True(t, summaries[2].Revenue.Equal(decimal.NewFromInt(60000)))
	assert.True(t, summaries[2].Expenses.Equal(decimal.NewFromInt(5000)))
	assert.True(t, summaries[0].Revenue.Equal(decimal.NewFromInt(30000)))

	assert.True(t, totals.Revenue.Equal(decimal.NewFromInt(135000)))
	assert.True(t, totals.Expenses.Equal(decimal.NewFromInt(13000)))
	// Only the deposited 10000 counts; the pending 20000 contributes zero
	assert.True(t, totals.Savings.Equal(decimal.NewFromInt(10000)))
}
