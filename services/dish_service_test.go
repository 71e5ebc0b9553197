package services

import (
	"testing"

	"backend/entity"
	"backend/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestDishCreate(t *testing.T) {
	db := setupDB(t)
	svc := NewDishService(repository.NewDishRepository(db))

	d, err := svc.Create("mapo tofu", dec("18"), dec("0.9"), "")
	require.NoError(t, err)
	assert.Equal(t, "16.20", d.FinalPrice().StringFixed(2))

	cases := []struct {
		name            string
		dish            string
		price, discount string
		wantErr         error
	}{
		{"duplicate name", "mapo tofu", "20", "1", ErrDishNameTaken},
		{"zero price", "free dish", "0", "1", ErrInvalidPrice},
		{"negative price", "odd dish", "-5", "1", ErrInvalidPrice},
		{"zero discount", "no dish", "10", "0", ErrInvalidDiscount},
		{"discount above one", "markup dish", "10", "1.5", ErrInvalidDiscount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(tc.dish, dec(tc.price), dec(tc.discount), "")
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	t.Run("blank name", func(t *testing.T) {
		_, err := svc.Create("   ", dec("10"), dec("1"), "")
		assert.Error(t, err)
	})
}

func TestDishUpdate(t *testing.T) {
	db := setupDB(t)
	svc := NewDishService(repository.NewDishRepository(db))

	a, err := svc.Create("dish a", dec("10"), dec("1"), "")
	require.NoError(t, err)
	b, err := svc.Create("dish b", dec("12"), dec("1"), "")
	require.NoError(t, err)

	newPrice := dec("11")
	require.NoError(t, svc.Update(a.ID, nil, &newPrice, nil, nil))
	got, err := svc.Get(a.ID)
	require.NoError(t, err)
	assert.Equal(t, "11.00", got.Price.StringFixed(2))

	t.Run("rename onto existing name", func(t *testing.T) {
		taken := "dish b"
		assert.ErrorIs(t, svc.Update(a.ID, &taken, nil, nil, nil), ErrDishNameTaken)
	})

	t.Run("rename keeping own name", func(t *testing.T) {
		same := "dish b"
		assert.NoError(t, svc.Update(b.ID, &same, nil, nil, nil))
	})

	t.Run("bad discount", func(t *testing.T) {
		d := dec("2")
		assert.ErrorIs(t, svc.Update(a.ID, nil, nil, &d, nil), ErrInvalidDiscount)
	})

	t.Run("missing dish", func(t *testing.T) {
		assert.ErrorIs(t, svc.Update(999, nil, &newPrice, nil, nil), ErrDishNotFound)
	})
}

func TestDishDeleteRemovesOrderItems(t *testing.T) {
	db := setupDB(t)
	dishSvc := NewDishService(repository.NewDishRepository(db))
	orderSvc := newOrderService(t, db)

	d := mustDish(t, db, "short-lived", "10", "1.0")
	keep := mustDish(t, db, "survivor", "4", "1.0")
	res := createDineIn(t, orderSvc,
		OrderItemIn{DishID: d.ID, Quantity: 1},
		OrderItemIn{DishID: keep.ID, Quantity: 1})

	require.NoError(t, dishSvc.Delete(d.ID))

	_, err := dishSvc.Get(d.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	detail, err := orderSvc.GetByOrderNo(res.OrderNo)
	require.NoError(t, err)
	require.Len(t, detail.Items, 1)
	assert.Equal(t, keep.ID, detail.Items[0].DishID)

	var count int64
	require.NoError(t, db.Model(&entity.OrderItem{}).
		Where("dish_id = ?", d.ID).Count(&count).Error)
	assert.Zero(t, count)
}
