package controllers

import (
	"time"

	"backend/configs"
	"backend/pkg/resp"
	"backend/repository"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AdminOrderController is the back office: order search across customers,
// deletion, CSV export and daily sales.
type AdminOrderController struct {
	orders *services.OrderService
	export *services.ExportService
	sales  *services.SalesService
}

func NewAdminOrderController(db *gorm.DB, cfg *configs.Config, orders *services.OrderService) *AdminOrderController {
	repo := repository.NewOrderRepository(db)
	clock := services.NewClock(cfg.TimeAPIURL, cfg.TimeAPITimeout)
	return &AdminOrderController{
		orders: orders,
		export: services.NewExportService(repo, cfg.ExportDir, clock),
		sales:  services.NewSalesService(repo),
	}
}

// ExportService exposes the exporter for the shutdown hook in main.
func (ac *AdminOrderController) ExportService() *services.ExportService { return ac.export }

// GET /admin/orders?orderNo=... | ?phone=... | ?date=...
func (ac *AdminOrderController) Search(c *gin.Context) {
	if orderNo := c.Query("orderNo"); orderNo != "" {
		detail, err := ac.orders.GetByOrderNo(orderNo)
		if err != nil {
			resp.NotFound(c, "order not found")
			return
		}
		resp.OK(c, gin.H{"items": []any{detail}})
		return
	}
	if phone := c.Query("phone"); phone != "" {
		orders, err := ac.orders.ListByPhone(phone)
		if err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.OK(c, gin.H{"items": orders})
		return
	}
	if date := c.Query("date"); date != "" {
		orders, err := ac.orders.ListByDate(date)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		resp.OK(c, gin.H{"items": orders})
		return
	}
	resp.BadRequest(c, "orderNo, phone or date query is required")
}

// DELETE /admin/orders/:orderNo
func (ac *AdminOrderController) Delete(c *gin.Context) {
	if err := ac.orders.Delete(c.Param("orderNo")); err != nil {
		resp.NotFound(c, "order not found")
		return
	}
	resp.OK(c, gin.H{"message": "order deleted"})
}

// POST /admin/orders/export {date?}
func (ac *AdminOrderController) Export(c *gin.Context) {
	var req struct {
		Date string `json:"date"`
	}
	_ = c.ShouldBindJSON(&req)
	if req.Date == "" {
		req.Date = time.Now().Format("2006-01-02")
	}

	path, err := ac.export.ExportByDate(req.Date)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"file": path})
}

// GET /admin/sales?date=...
func (ac *AdminOrderController) Sales(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	stats, err := ac.sales.StatsByDate(date)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if stats == nil {
		resp.OK(c, gin.H{"date": date, "message": "no orders on this date"})
		return
	}
	resp.OK(c, stats)
}
