package services

import (
	"backend/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Fixed surcharges added on top of the item subtotal.
var (
	TakeoutFee     = decimal.NewFromInt(5)
	PrivateRoomFee = decimal.NewFromInt(20)
)

// Surcharge for an order: takeout pays the delivery fee, dine-in pays the
// room fee only when a private room was booked.
func Surcharge(orderType entity.OrderType, hasRoomFee bool) decimal.Decimal {
	switch {
	case orderType == entity.OrderTakeout:
		return TakeoutFee
	case orderType == entity.OrderDineIn && hasRoomFee:
		return PrivateRoomFee
	default:
		return decimal.Zero
	}
}

// RecomputeTotal rereads the order's item rows, sums quantity x unit price,
// adds the surcharge and writes total_amount back. Runs on the caller's
// transaction so an item mutation and its recompute commit or roll back
// together.
func RecomputeTotal(tx *gorm.DB, orderID uint) error {
	var o entity.Order
	if err := tx.Select("id, order_type, has_room_fee").First(&o, orderID).Error; err != nil {
		return err
	}

	var items []entity.OrderItem
	if err := tx.Where("order_id = ?", orderID).Find(&items).Error; err != nil {
		return err
	}

	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	total = total.Add(Surcharge(o.OrderType, o.HasRoomFee)).Round(2)

	return tx.Model(&entity.Order{}).Where("id = ?", orderID).
		Update("total_amount", total).Error
}
