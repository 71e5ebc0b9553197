package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderType string

const (
	OrderDineIn  OrderType = "dinein"
	OrderTakeout OrderType = "takeout"
)

func (t OrderType) Valid() bool {
	return t == OrderDineIn || t == OrderTakeout
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderCompleted, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

type Order struct {
	gorm.Model
	OrderNo     string          `gorm:"uniqueIndex;not null" json:"orderNo"`
	OrderType   OrderType       `gorm:"not null" json:"orderType"`
	Phone       string          `gorm:"not null" json:"phone"`
	Status      OrderStatus     `gorm:"not null;default:completed" json:"status"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"totalAmount"`
	PlacedAt    time.Time       `json:"placedAt"`

	// dine-in only
	TableNum   string `json:"tableNum"`
	HasRoomFee bool   `json:"hasRoomFee"`

	// takeout only
	TakeoutTime    string `json:"takeoutTime"`
	TakeoutAddress string `json:"takeoutAddress"`

	// preload only for detail
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
}
