package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItem covers the main menu, toppings and drinks, distinguished by Kind.
type MenuItem struct {
	ID    uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name  string          `gorm:"not null" json:"name"`
	Price decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"price"`
	Kind  string          `gorm:"type:varchar(10);not null;default:'menu'" json:"kind"` // 'menu', 'topping' or 'drink'

	// Inventory item consumed when this menu item is sold, optional
	StockID *uuid.UUID `gorm:"type:uuid;index" json:"stockId"`
}

const (
	MenuKindMenu    = "menu"
	MenuKindTopping = "topping"
	MenuKindDrink   = "drink"
)

type InventoryItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Quantity int       `gorm:"default:0" json:"quantity"`
	MinStock int       `gorm:"default:5" json:"minStock"`
}
