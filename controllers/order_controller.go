package controllers

import (
	"backend/configs"
	"backend/pkg/resp"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// OrderController is the customer-facing side: placing an order, querying
// it by order number or phone, and adjusting its lines.
type OrderController struct {
	svc *services.OrderService
}

func NewOrderController(db *gorm.DB, cfg *configs.Config) *OrderController {
	clock := services.NewClock(cfg.TimeAPIURL, cfg.TimeAPITimeout)
	return &OrderController{
		svc: services.NewOrderService(db,
			repository.NewOrderRepository(db),
			repository.NewDishRepository(db),
			clock),
	}
}

// Service exposes the order service for wiring the export/admin side.
func (oc *OrderController) Service() *services.OrderService { return oc.svc }

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var req services.CreateOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := oc.svc.Create(&req)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, out)
}

// GET /orders/:orderNo
func (oc *OrderController) Detail(c *gin.Context) {
	detail, err := oc.svc.GetByOrderNo(c.Param("orderNo"))
	if err != nil {
		resp.NotFound(c, "order not found")
		return
	}
	resp.OK(c, detail)
}

// GET /orders?phone=...
func (oc *OrderController) ListByPhone(c *gin.Context) {
	phone := c.Query("phone")
	orders, err := oc.svc.ListByPhone(phone)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"items": orders})
}

type itemReq struct {
	DishID   uint `json:"dishId" binding:"required"`
	Quantity int  `json:"quantity"`
}

// POST /orders/:orderNo/items, rejected when the dish is already a line.
func (oc *OrderController) AddItem(c *gin.Context) {
	var req itemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := oc.svc.AddItem(c.Param("orderNo"), req.DishID, req.Quantity); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"message": "item added"})
}

// PATCH /orders/:orderNo/items changes a line's quantity.
func (oc *OrderController) UpdateItem(c *gin.Context) {
	var req itemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := oc.svc.UpdateItem(c.Param("orderNo"), req.DishID, req.Quantity); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"message": "item updated"})
}

// DELETE /orders/:orderNo/items
func (oc *OrderController) RemoveItem(c *gin.Context) {
	var req struct {
		DishID uint `json:"dishId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := oc.svc.RemoveItem(c.Param("orderNo"), req.DishID); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"message": "item removed"})
}

type updateFieldReq struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value" binding:"required"`
}

// PATCH /orders/:orderNo updates a single order header field.
func (oc *OrderController) UpdateField(c *gin.Context) {
	var req updateFieldReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := oc.svc.UpdateField(c.Param("orderNo"), req.Field, req.Value); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"message": "order updated"})
}
