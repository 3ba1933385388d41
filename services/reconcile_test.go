package services

import (
	"testing"

	"miednight-backend/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExpectedCashScenario(t *testing.T) {
	// Starting float 100000, one paid cash sale of 50000, one expense of
	// 20000 on the same date: expected drawer = 130000
	date := "2026-08-27"
	trxs := []models.Transaction{paidTrx(date, models.PaymentMethodCash, 50000)}
	expenses := []models.Expense{{Date: date, Amount: decimal.NewFromInt(20000)}}

	expected := ExpectedCash(
		decimal.NewFromInt(100000),
		DailySales(trxs, date).CashTotal,
		ExpenseTotal(expenses, date),
	)

	assert.True(t, expected.Equal(decimal.NewFromInt(130000)), "expected = %s", expected)

	// Counting exactly the expected amount reconciles with zero difference
	actual := decimal.NewFromInt(130000)
	assert.True(t, actual.Sub(expected).IsZero())
}

func TestExpectedCashIgnoresElectronicSales(t *testing.T) {
	date := "2026-08-27"
	trxs := []models.Transaction{
		paidTrx(date, models.PaymentMethodCash, 40000),
		paidTrx(date, models.PaymentMethodElectronic, 60000),
	}

	expected := ExpectedCash(decimal.NewFromInt(50000), DailySales(trxs, date).CashTotal, decimal.Zero)

	assert.True(t, expected.Equal(decimal.NewFromInt(90000)))
}

func TestDifferenceIdentity(t *testing.T) {
	// difference = actual - expected, recomputed independently
	date := "2026-08-27"
	trxs := []models.Transaction{paidTrx(date, models.PaymentMethodCash, 75000)}
	expenses := []models.Expense{{Date: date, Amount: decimal.NewFromInt(12000)}}
	float := decimal.NewFromInt(100000)

	expected := ExpectedCash(float, DailySales(trxs, date).CashTotal, ExpenseTotal(expenses, date))
	actual := decimal.NewFromInt(160000)
	difference := actual.Sub(expected)

	independent := float.Add(decimal.NewFromInt(75000)).Sub(decimal.NewFromInt(12000))
	assert.True(t, expected.Equal(independent))
	assert.True(t, difference.Equal(decimal.NewFromInt(-3000)))
}

func TestDrawerStatusKeepsLastCountAfterReset(t *testing.T) {
	// Reset clears the reconciled flag only; the previous count and
	// difference stay visible as a pre-fill for the redo
	date := "2026-08-27"
	cash := models.DailyCash{Date: date, StartingFloat: decimal.NewFromInt(100000)}
	log := models.DailyLog{
		Date:           date,
		CashReconciled: false,
		ActualCash:     decimal.NewFromInt(128000),
		CashDifference: decimal.NewFromInt(-2000),
	}
	trxs := []models.Transaction{paidTrx(date, models.PaymentMethodCash, 50000)}
	expenses := []models.Expense{{Date: date, Amount: decimal.NewFromInt(20000)}}

	status := DrawerStatusFor(date, cash, log, trxs, expenses)

	assert.False(t, status.Reconciled)
	assert.True(t, status.ActualCash.Equal(decimal.NewFromInt(128000)))
	assert.True(t, status.Difference.Equal(decimal.NewFromInt(-2000)))
	assert.True(t, status.Expected.Equal(decimal.NewFromInt(130000)))
}

func TestValidAmount(t *testing.T) {
	assert.True(t, ValidAmount(decimal.Zero))
	assert.True(t, ValidAmount(decimal.NewFromInt(1)))
	assert.False(t, ValidAmount(decimal.NewFromInt(-1)))
}
