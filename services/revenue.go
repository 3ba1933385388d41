// services/revenue.go
package services

import (
	"miednight-backend/models"

	"github.com/shopspring/decimal"
)

// SalesSummary is one business day's paid-sales totals.
type SalesSummary struct {
	Total           decimal.Decimal `json:"total"`
	CashTotal       decimal.Decimal `json:"cashTotal"`
	ElectronicTotal decimal.Decimal `json:"electronicTotal"`
	Count           int             `json:"count"`
}

// DailySales recomputes the paid-sales totals for one business date from the
// full transaction list. Unpaid transactions and transactions on other dates
// never contribute. There is no cache: transactions can be paid out of order,
// so every call walks the whole list.
func DailySales(trxs []models.Transaction, date string) SalesSummary {
	s := SalesSummary{
		Total:           decimal.Zero,
		CashTotal:       decimal.Zero,
		ElectronicTotal: decimal.Zero,
	}
	for _, t := range trxs {
		if t.PaymentStatus != models.PaymentStatusPaid || BusinessDate(t.CreatedAt) != date {
			continue
		}
		s.Total = s.Total.Add(t.Total)
		s.Count++
		switch t.PaymentMethod {
		case models.PaymentMethodCash:
			s.CashTotal = s.CashTotal.Add(t.Total)
		case models.PaymentMethodElectronic:
			s.ElectronicTotal = s.ElectronicTotal.Add(t.Total)
		}
	}
	return s
}

// PaidTransactions returns the paid transactions of one business date, in
// input order.
func PaidTransactions(trxs []models.Transaction, date string) []models.Transaction {
	var out []models.Transaction
	for _, t := range trxs {
		if t.PaymentStatus == models.PaymentStatusPaid && BusinessDate(t.CreatedAt) == date {
			out = append(out, t)
		}
	}
	return out
}

// ExpenseTotal sums the expense entries recorded against one business date.
func ExpenseTotal(expenses []models.Expense, date string) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if e.Date == date {
			total = total.Add(e.Amount)
		}
	}
	return total
}
