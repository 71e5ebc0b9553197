package repository

import (
	"backend/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

// FindByOrderNo runs on the given handle so lookups inside a transaction
// stay on that transaction; callers outside one pass the root DB.
func (r *OrderRepository) FindByOrderNo(tx *gorm.DB, orderNo string) (*entity.Order, error) {
	var o entity.Order
	if err := tx.Where("order_no = ?", orderNo).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// ListByPhone returns a customer's orders, newest first.
func (r *OrderRepository) ListByPhone(phone string) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("phone = ?", phone).Order("placed_at DESC").Find(&orders).Error
	return orders, err
}

// ListByDate returns the orders placed on a YYYY-MM-DD date, oldest first.
func (r *OrderRepository) ListByDate(date string) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Where("DATE(placed_at) = ?", date).Order("placed_at").Find(&orders).Error
	return orders, err
}

// UpdateFields writes already-validated order fields by order number.
func (r *OrderRepository) UpdateFields(orderNo string, updates map[string]any) (int64, error) {
	res := r.DB.Model(&entity.Order{}).Where("order_no = ?", orderNo).Updates(updates)
	return res.RowsAffected, res.Error
}

// Delete soft-deletes the order and removes its item rows with it.
func (r *OrderRepository) Delete(orderNo string) (int64, error) {
	var affected int64
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("order_no = ?", orderNo).Delete(&entity.Order{})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		if affected == 0 {
			return nil
		}

		var ids []uint
		if err := tx.Unscoped().Model(&entity.Order{}).Where("order_no = ?", orderNo).Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) > 0 {
			if err := tx.Unscoped().Where("order_id IN ?", ids).Delete(&entity.OrderItem{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	return affected, err
}

// ---------------- Order items ----------------

func (r *OrderRepository) CreateItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) ItemExists(tx *gorm.DB, orderID, dishID uint) (bool, error) {
	var count int64
	err := tx.Model(&entity.OrderItem{}).
		Where("order_id = ? AND dish_id = ?", orderID, dishID).
		Count(&count).Error
	return count > 0, err
}

func (r *OrderRepository) UpdateItem(tx *gorm.DB, orderID, dishID uint, quantity int, unitPrice decimal.Decimal) (int64, error) {
	res := tx.Model(&entity.OrderItem{}).
		Where("order_id = ? AND dish_id = ?", orderID, dishID).
		Updates(map[string]any{"quantity": quantity, "unit_price": unitPrice})
	return res.RowsAffected, res.Error
}

// DeleteItem removes the row for good; a soft-deleted line would still hold
// the (order, dish) unique slot and block re-adding the dish.
func (r *OrderRepository) DeleteItem(tx *gorm.DB, orderID, dishID uint) (int64, error) {
	res := tx.Unscoped().Where("order_id = ? AND dish_id = ?", orderID, dishID).Delete(&entity.OrderItem{})
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) GetItems(tx *gorm.DB, orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := tx.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}

// ItemLine is an item row joined with its dish name, for detail views and
// the CSV export.
type ItemLine struct {
	DishID    uint            `json:"dishId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

func (r *OrderRepository) GetItemLines(orderID uint) ([]ItemLine, error) {
	var lines []ItemLine
	err := r.DB.Table("order_items AS oi").
		Select("oi.dish_id, d.name, oi.quantity, oi.unit_price").
		Joins("JOIN dishes d ON d.id = oi.dish_id").
		Where("oi.order_id = ? AND oi.deleted_at IS NULL", orderID).
		Scan(&lines).Error
	return lines, err
}

// ---------------- Aggregates ----------------

// SalesRow is the per-date totals split by order type.
type SalesRow struct {
	TotalOrders  int64           `json:"totalOrders"`
	TotalSales   decimal.Decimal `json:"totalSales"`
	TakeoutCount int64           `json:"takeoutCount"`
	DineinCount  int64           `json:"dineinCount"`
	TakeoutSales decimal.Decimal `json:"takeoutSales"`
	DineinSales  decimal.Decimal `json:"dineinSales"`
}

func (r *OrderRepository) SalesByDate(date string) (*SalesRow, error) {
	var row SalesRow
	err := r.DB.Table("orders").
		Select(`COUNT(*) AS total_orders,
			COALESCE(SUM(total_amount), 0) AS total_sales,
			COALESCE(SUM(CASE WHEN order_type = 'takeout' THEN 1 ELSE 0 END), 0) AS takeout_count,
			COALESCE(SUM(CASE WHEN order_type = 'dinein' THEN 1 ELSE 0 END), 0) AS dinein_count,
			COALESCE(SUM(CASE WHEN order_type = 'takeout' THEN total_amount ELSE 0 END), 0) AS takeout_sales,
			COALESCE(SUM(CASE WHEN order_type = 'dinein' THEN total_amount ELSE 0 END), 0) AS dinein_sales`).
		Where("DATE(placed_at) = ? AND deleted_at IS NULL", date).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// DishSalesRow ranks dishes sold on a date by revenue.
type DishSalesRow struct {
	Name     string          `json:"name"`
	Quantity int64           `json:"quantity"`
	Amount   decimal.Decimal `json:"amount"`
}

func (r *OrderRepository) DishSalesByDate(date string) ([]DishSalesRow, error) {
	var rows []DishSalesRow
	err := r.DB.Table("order_items AS oi").
		Select("d.name, SUM(oi.quantity) AS quantity, SUM(oi.unit_price * oi.quantity) AS amount").
		Joins("JOIN dishes d ON d.id = oi.dish_id").
		Joins("JOIN orders o ON o.id = oi.order_id").
		Where("DATE(o.placed_at) = ? AND oi.deleted_at IS NULL AND o.deleted_at IS NULL", date).
		Group("d.name").
		Order("amount DESC").
		Scan(&rows).Error
	return rows, err
}
