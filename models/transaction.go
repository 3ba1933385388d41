package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"

	PaymentMethodCash       = "cash"
	PaymentMethodElectronic = "electronic" // QRIS at the stall
)

// Transaction is an order on the POS side. Once paid it is considered final:
// items and total are never edited afterwards.
type Transaction struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CustomerName string    `json:"customerName"`

	PaymentStatus string `gorm:"type:varchar(10);not null;default:'unpaid'" json:"paymentStatus"`
	PaymentMethod string `gorm:"type:varchar(12)" json:"paymentMethod"`

	Total     decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total"`
	Delivered bool            `gorm:"default:false" json:"delivered"`
	CreatedAt time.Time       `gorm:"not null" json:"createdAt"`

	Items []OrderItem `gorm:"foreignKey:TransactionID" json:"items"`
}

type OrderItem struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TransactionID uuid.UUID `gorm:"type:uuid;index;not null" json:"transactionId"`

	Name      string          `gorm:"not null" json:"name"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"unitPrice"`
	Quantity  int             `gorm:"not null;default:1" json:"quantity"`

	// Inventory item consumed by this line, optional
	StockID *uuid.UUID `gorm:"type:uuid" json:"stockId"`
}
