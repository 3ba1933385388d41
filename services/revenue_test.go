package services

import (
	"testing"
	"time"

	"miednight-backend/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// paidTrx builds a paid transaction rung up in the evening of date
func paidTrx(date string, method string, total int64) models.Transaction {
	day, _ := time.Parse("2006-01-02", date)
	return models.Transaction{
		ID:            uuid.New(),
		PaymentStatus: models.PaymentStatusPaid,
		PaymentMethod: method,
		Total:         decimal.NewFromInt(total),
		CreatedAt:     day.Add(20 * time.Hour),
	}
}

func unpaidTrx(date string, total int64) models.Transaction {
	t := paidTrx(date, "", total)
	t.PaymentStatus = models.PaymentStatusUnpaid
	t.PaymentMethod = ""
	return t
}

func TestDailySalesSubtotalsAddUp(t *testing.T) {
	trxs := []models.Transaction{
		paidTrx("2026-08-27", models.PaymentMethodCash, 50000),
		paidTrx("2026-08-27", models.PaymentMethodCash, 18000),
		paidTrx("2026-08-27", models.PaymentMethodElectronic, 32000),
	}

	s := DailySales(trxs, "2026-08-27")

	assert.True(t, s.Total.Equal(decimal.NewFromInt(100000)), "total = %s", s.Total)
	assert.True(t, s.CashTotal.Equal(decimal.NewFromInt(68000)))
	assert.True(t, s.ElectronicTotal.Equal(decimal.NewFromInt(32000)))
	assert.True(t, s.Total.Equal(s.CashTotal.Add(s.ElectronicTotal)))
	assert.Equal(t, 3, s.Count)
}

func TestDailySalesExcludesUnpaidAndOtherDates(t *testing.T) {
	trxs := []models.Transaction{
		paidTrx("2026-08-27", models.PaymentMethodCash, 50000),
		unpaidTrx("2026-08-27", 99999),
		paidTrx("2026-08-26", models.PaymentMethodCash, 77777),
	}

	s := DailySales(trxs, "2026-08-27")

	assert.True(t, s.Total.Equal(decimal.NewFromInt(50000)))
	assert.Equal(t, 1, s.Count)
}

func TestDailySalesEarlyMorningSaleBelongsToPreviousDay(t *testing.T) {
	day, _ := time.Parse("2006-01-02", "2026-08-28")
	lateNight := models.Transaction{
		ID:            uuid.New(),
		PaymentStatus: models.PaymentStatusPaid,
		PaymentMethod: models.PaymentMethodCash,
		Total:         decimal.NewFromInt(25000),
		CreatedAt:     day.Add(1 * time.Hour), // 01:00 on the 28th
	}

	assert.True(t, DailySales([]models.Transaction{lateNight}, "2026-08-27").Total.Equal(decimal.NewFromInt(25000)))
	assert.True(t, DailySales([]models.Transaction{lateNight}, "2026-08-28").Total.IsZero())
}

func TestDailySalesEmpty(t *testing.T) {
	s := DailySales(nil, "2026-08-27")
	assert.True(t, s.Total.IsZero())
	assert.True(t, s.CashTotal.IsZero())
	assert.True(t, s.ElectronicTotal.IsZero())
	assert.Equal(t, 0, s.Count)
}

func TestPaidTransactionsPreservesOrder(t *testing.T) {
	first := paidTrx("2026-08-27", models.PaymentMethodCash, 10000)
	second := paidTrx("2026-08-27", models.PaymentMethodElectronic, 20000)
	trxs := []models.Transaction{first, unpaidTrx("2026-08-27", 5000), second}

	paid := PaidTransactions(trxs, "2026-08-27")

	assert.Len(t, paid, 2)
	assert.Equal(t, first.ID, paid[0].ID)
	assert.Equal(t, second.ID, paid[1].ID)
}

func TestExpenseTotal(t *testing.T) {
	expenses := []models.Expense{
		{Date: "2026-08-27", Amount: decimal.NewFromInt(20000)},
		{Date: "2026-08-27", Amount: decimal.NewFromInt(5000)},
		{Date: "2026-08-26", Amount: decimal.NewFromInt(99000)},
	}

	assert.True(t, ExpenseTotal(expenses, "2026-08-27").Equal(decimal.NewFromInt(25000)))
	assert.True(t, ExpenseTotal(expenses, "2026-08-25").IsZero())
}
