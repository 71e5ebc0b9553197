package services

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"backend/entity"
	"backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportByDate(t *testing.T) {
	db := setupDB(t)
	orderSvc := newOrderService(t, db)
	svc := NewExportService(repository.NewOrderRepository(db), t.TempDir(), NewClock("", 0))

	a := mustDish(t, db, "braised pork", "30", "0.8")
	b := mustDish(t, db, "fried rice", "15", "1.0")

	dineIn, err := orderSvc.Create(&CreateOrderReq{
		OrderType:  entity.OrderDineIn,
		Phone:      "13800000001",
		TableNum:   "A3",
		HasRoomFee: true,
		Items:      []OrderItemIn{{DishID: a.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	_, err = orderSvc.Create(&CreateOrderReq{
		OrderType:      entity.OrderTakeout,
		Phone:          "13800000002",
		TakeoutTime:    "12:30",
		TakeoutAddress: "1 River Rd",
		Items:          []OrderItemIn{{DishID: b.ID, Quantity: 3}},
	})
	require.NoError(t, err)

	today := time.Now().Format("2006-01-02")
	path, err := svc.ExportByDate(today)
	require.NoError(t, err)
	assert.Equal(t, today+"_orders.csv", filepath.Base(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, exportHeader, records[0])

	byOrderNo := map[string][]string{}
	for _, rec := range records[1:] {
		byOrderNo[rec[0]] = rec
	}
	row := byOrderNo[dineIn.OrderNo]
	require.NotNil(t, row)
	assert.Equal(t, "Dine-in", row[1])
	assert.Equal(t, "68.00", row[3])
	assert.Equal(t, "A3", row[4])
	assert.Equal(t, "yes", row[5])
	assert.Equal(t, "20.00", row[6])
	assert.Equal(t, "completed", row[10])
	assert.Equal(t, "braised pork x 2 = 48.00", row[11])
}

func TestExportEmptyDay(t *testing.T) {
	db := setupDB(t)
	svc := NewExportService(repository.NewOrderRepository(db), t.TempDir(), NewClock("", 0))

	path, err := svc.ExportByDate("2001-01-01")
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	// header only
	require.Len(t, records, 1)
	assert.Equal(t, exportHeader, records[0])
}
