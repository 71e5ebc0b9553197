package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Dish struct {
	gorm.Model
	Name     string          `gorm:"uniqueIndex;not null" json:"name"`
	Price    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Discount decimal.Decimal `gorm:"type:decimal(4,2);not null;default:1" json:"discount"`
	Image    string          `json:"image"`

	// Deleting a dish takes its order items with it
	OrderItems []OrderItem `gorm:"foreignKey:DishID;constraint:OnDelete:CASCADE" json:"-"`
}

// FinalPrice is the discounted price, rounded to 2 decimal places.
func (d *Dish) FinalPrice() decimal.Decimal {
	return d.Price.Mul(d.Discount).Round(2)
}
