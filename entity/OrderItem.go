package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem holds at most one row per (order, dish) pair. UnitPrice is the
// dish's discounted price frozen at the time the line was added.
type OrderItem struct {
	gorm.Model
	OrderID uint `gorm:"uniqueIndex:idx_order_dish;not null" json:"orderId"`
	DishID  uint `gorm:"uniqueIndex:idx_order_dish;not null" json:"dishId"`

	Quantity  int             `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unitPrice"`

	Order Order `json:"-"`
	Dish  Dish  `json:"-"` // preload when the dish name is needed
}

// Subtotal is quantity x unit price for this line.
func (oi *OrderItem) Subtotal() decimal.Decimal {
	return oi.UnitPrice.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}
