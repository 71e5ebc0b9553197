package services

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"backend/entity"
	"backend/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const orderNoPrefix = "ORD"

var (
	ErrInvalidPhone     = errors.New("phone must be 11 digits")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrDuplicateItem    = errors.New("dish already in order, use update instead")
	ErrOrderNotFound    = errors.New("order not found")
	ErrDishNotFound     = errors.New("dish not found")
	ErrItemNotFound     = errors.New("item not in order")
	ErrEmptyOrder       = errors.New("order needs at least one item")
	ErrInvalidOrderType = errors.New("invalid order type")
)

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	DishRepo *repository.DishRepository
	Clock    *Clock
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, dishRepo *repository.DishRepository, clock *Clock) *OrderService {
	return &OrderService{DB: db, Repo: repo, DishRepo: dishRepo, Clock: clock}
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	DishID   uint `json:"dishId" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

type CreateOrderReq struct {
	OrderType entity.OrderType `json:"orderType" binding:"required"`
	Phone     string           `json:"phone" binding:"required"`
	Items     []OrderItemIn    `json:"items" binding:"required,min=1"`

	// dine-in
	TableNum   string `json:"tableNum"`
	HasRoomFee bool   `json:"hasRoomFee"`

	// takeout
	TakeoutTime    string `json:"takeoutTime"`
	TakeoutAddress string `json:"takeoutAddress"`
}

type CreateOrderRes struct {
	OrderNo string          `json:"orderNo"`
	Total   decimal.Decimal `json:"total"`
}

func validPhone(phone string) bool {
	if len(phone) != 11 {
		return false
	}
	for _, c := range phone {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// generateOrderNo: timestamp to the second plus a 3-digit random suffix.
// Same-second collisions are not handled (known gap).
func (s *OrderService) generateOrderNo() string {
	return fmt.Sprintf("%s%s%d", orderNoPrefix, s.Clock.Timestamp(), 100+rand.Intn(900))
}

// ----- Create -----

func (s *OrderService) Create(req *CreateOrderReq) (*CreateOrderRes, error) {
	if !req.OrderType.Valid() {
		return nil, ErrInvalidOrderType
	}
	if !validPhone(strings.TrimSpace(req.Phone)) {
		return nil, ErrInvalidPhone
	}
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	switch req.OrderType {
	case entity.OrderDineIn:
		if strings.TrimSpace(req.TableNum) == "" {
			return nil, errors.New("table number is required")
		}
	case entity.OrderTakeout:
		if strings.TrimSpace(req.TakeoutTime) == "" {
			return nil, errors.New("takeout time is required")
		}
		if strings.TrimSpace(req.TakeoutAddress) == "" {
			return nil, errors.New("takeout address is required")
		}
	}

	// snapshot unit prices before opening the transaction
	type line struct {
		dishID    uint
		quantity  int
		unitPrice decimal.Decimal
	}
	lines := make([]line, 0, len(req.Items))
	seen := make(map[uint]bool, len(req.Items))
	for _, it := range req.Items {
		if it.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
		if seen[it.DishID] {
			return nil, ErrDuplicateItem
		}
		seen[it.DishID] = true

		d, err := s.DishRepo.FindByID(s.DB, it.DishID)
		if err != nil {
			return nil, ErrDishNotFound
		}
		lines = append(lines, line{dishID: d.ID, quantity: it.Quantity, unitPrice: d.FinalPrice()})
	}

	order := entity.Order{
		OrderNo:        s.generateOrderNo(),
		OrderType:      req.OrderType,
		Phone:          strings.TrimSpace(req.Phone),
		Status:         entity.OrderCompleted,
		PlacedAt:       s.Clock.Now(),
		TableNum:       strings.TrimSpace(req.TableNum),
		HasRoomFee:     req.OrderType == entity.OrderDineIn && req.HasRoomFee,
		TakeoutTime:    strings.TrimSpace(req.TakeoutTime),
		TakeoutAddress: strings.TrimSpace(req.TakeoutAddress),
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}
		for _, l := range lines {
			oi := entity.OrderItem{
				OrderID: order.ID, DishID: l.dishID,
				Quantity: l.quantity, UnitPrice: l.unitPrice,
			}
			if err := s.Repo.CreateItem(tx, &oi); err != nil {
				return err
			}
		}
		return RecomputeTotal(tx, order.ID)
	})
	if err != nil {
		return nil, err
	}

	if err := s.DB.Select("total_amount").First(&order, order.ID).Error; err != nil {
		return nil, err
	}
	return &CreateOrderRes{OrderNo: order.OrderNo, Total: order.TotalAmount}, nil
}

// ----- Item mutations -----

// AddItem appends a new dish line. A dish already present is rejected, not
// merged; the unit price is frozen from the dish's current discounted price.
func (s *OrderService) AddItem(orderNo string, dishID uint, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.FindByOrderNo(tx, orderNo)
		if err != nil {
			return ErrOrderNotFound
		}
		d, err := s.DishRepo.FindByID(tx, dishID)
		if err != nil {
			return ErrDishNotFound
		}

		exists, err := s.Repo.ItemExists(tx, o.ID, dishID)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateItem
		}

		oi := entity.OrderItem{
			OrderID: o.ID, DishID: dishID,
			Quantity: quantity, UnitPrice: d.FinalPrice(),
		}
		if err := s.Repo.CreateItem(tx, &oi); err != nil {
			return err
		}
		return RecomputeTotal(tx, o.ID)
	})
}

// UpdateItem changes a line's quantity and refreshes its unit price from
// the dish's current discounted price.
func (s *OrderService) UpdateItem(orderNo string, dishID uint, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.FindByOrderNo(tx, orderNo)
		if err != nil {
			return ErrOrderNotFound
		}
		d, err := s.DishRepo.FindByID(tx, dishID)
		if err != nil {
			return ErrDishNotFound
		}

		affected, err := s.Repo.UpdateItem(tx, o.ID, dishID, quantity, d.FinalPrice())
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrItemNotFound
		}
		return RecomputeTotal(tx, o.ID)
	})
}

func (s *OrderService) RemoveItem(orderNo string, dishID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.FindByOrderNo(tx, orderNo)
		if err != nil {
			return ErrOrderNotFound
		}
		affected, err := s.Repo.DeleteItem(tx, o.ID, dishID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrItemNotFound
		}
		return RecomputeTotal(tx, o.ID)
	})
}

// ----- Field updates -----

// UpdateField is the single mutation path for the order header fields the
// back office and customers may touch.
func (s *OrderService) UpdateField(orderNo, field, value string) error {
	value = strings.TrimSpace(value)
	switch field {
	case "status":
		if !entity.OrderStatus(value).Valid() {
			return errors.New("invalid status")
		}
	case "phone":
		if !validPhone(value) {
			return ErrInvalidPhone
		}
	case "table_num", "takeout_address", "takeout_time":
		// free-form
	default:
		return fmt.Errorf("field %q cannot be updated", field)
	}

	affected, err := s.Repo.UpdateFields(orderNo, map[string]any{field: value})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (s *OrderService) Delete(orderNo string) error {
	affected, err := s.Repo.Delete(orderNo)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// ----- Lookups -----

type OrderDetail struct {
	OrderNo        string                `json:"orderNo"`
	OrderType      entity.OrderType      `json:"orderType"`
	Phone          string                `json:"phone"`
	Status         entity.OrderStatus    `json:"status"`
	TotalAmount    decimal.Decimal       `json:"totalAmount"`
	PlacedAt       string                `json:"placedAt"`
	TableNum       string                `json:"tableNum,omitempty"`
	HasRoomFee     bool                  `json:"hasRoomFee"`
	TakeoutTime    string                `json:"takeoutTime,omitempty"`
	TakeoutAddress string                `json:"takeoutAddress,omitempty"`
	Items          []repository.ItemLine `json:"items"`
}

func (s *OrderService) detail(o *entity.Order) (*OrderDetail, error) {
	items, err := s.Repo.GetItemLines(o.ID)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{
		OrderNo:        o.OrderNo,
		OrderType:      o.OrderType,
		Phone:          o.Phone,
		Status:         o.Status,
		TotalAmount:    o.TotalAmount,
		PlacedAt:       o.PlacedAt.Format("2006-01-02 15:04:05"),
		TableNum:       o.TableNum,
		HasRoomFee:     o.HasRoomFee,
		TakeoutTime:    o.TakeoutTime,
		TakeoutAddress: o.TakeoutAddress,
		Items:          items,
	}, nil
}

func (s *OrderService) GetByOrderNo(orderNo string) (*OrderDetail, error) {
	o, err := s.Repo.FindByOrderNo(s.DB, orderNo)
	if err != nil {
		return nil, ErrOrderNotFound
	}
	return s.detail(o)
}

func (s *OrderService) ListByPhone(phone string) ([]*OrderDetail, error) {
	if !validPhone(phone) {
		return nil, ErrInvalidPhone
	}
	orders, err := s.Repo.ListByPhone(phone)
	if err != nil {
		return nil, err
	}
	out := make([]*OrderDetail, 0, len(orders))
	for i := range orders {
		d, err := s.detail(&orders[i])
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (s *OrderService) ListByDate(date string) ([]*OrderDetail, error) {
	orders, err := s.Repo.ListByDate(date)
	if err != nil {
		return nil, err
	}
	out := make([]*OrderDetail, 0, len(orders))
	for i := range orders {
		d, err := s.detail(&orders[i])
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
