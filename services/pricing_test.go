package services

import (
	"testing"

	"backend/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSurcharge(t *testing.T) {
	cases := []struct {
		name       string
		orderType  entity.OrderType
		hasRoomFee bool
		want       string
	}{
		{"dine-in without room", entity.OrderDineIn, false, "0"},
		{"dine-in with room", entity.OrderDineIn, true, "20"},
		{"takeout", entity.OrderTakeout, false, "5"},
		{"takeout ignores room flag", entity.OrderTakeout, true, "5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Surcharge(tc.orderType, tc.hasRoomFee)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
				"got %s, want %s", got, tc.want)
		})
	}
}

func TestRecomputeTotal(t *testing.T) {
	db := setupDB(t)
	svc := newOrderService(t, db)

	t.Run("dine-in with room fee", func(t *testing.T) {
		// 30 * 0.8 * 2 = 48.00, plus the 20.00 room fee
		d := mustDish(t, db, "braised pork", "30", "0.8")
		res, err := svc.Create(&CreateOrderReq{
			OrderType:  entity.OrderDineIn,
			Phone:      "13800000001",
			TableNum:   "A3",
			HasRoomFee: true,
			Items:      []OrderItemIn{{DishID: d.ID, Quantity: 2}},
		})
		require.NoError(t, err)
		assert.Equal(t, "68.00", res.Total.StringFixed(2))
	})

	t.Run("takeout", func(t *testing.T) {
		// 15 * 1.0 * 3 = 45.00, plus the 5.00 takeout fee
		d := mustDish(t, db, "fried rice", "15", "1.0")
		res, err := svc.Create(&CreateOrderReq{
			OrderType:      entity.OrderTakeout,
			Phone:          "13800000002",
			TakeoutTime:    "2026-09-01 12:30",
			TakeoutAddress: "1 River Rd",
			Items:          []OrderItemIn{{DishID: d.ID, Quantity: 3}},
		})
		require.NoError(t, err)
		assert.Equal(t, "50.00", res.Total.StringFixed(2))
	})
}

func TestFinalPriceNeverExceedsListPrice(t *testing.T) {
	cases := []struct{ price, discount string }{
		{"30", "0.8"},
		{"15", "1.0"},
		{"9.99", "0.5"},
		{"100", "0.01"},
	}
	for _, tc := range cases {
		d := entity.Dish{
			Price:    decimal.RequireFromString(tc.price),
			Discount: decimal.RequireFromString(tc.discount),
		}
		assert.True(t, d.FinalPrice().LessThanOrEqual(d.Price),
			"final %s > price %s", d.FinalPrice(), d.Price)
	}
}
