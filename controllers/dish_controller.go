package controllers

import (
	"strconv"

	"backend/configs"
	"backend/pkg/resp"
	"backend/repository"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DishController struct {
	svc *services.DishService
	cfg *configs.Config
}

func NewDishController(db *gorm.DB, cfg *configs.Config) *DishController {
	return &DishController{
		svc: services.NewDishService(repository.NewDishRepository(db)),
		cfg: cfg,
	}
}

// GET /dishes is the customer-facing menu.
func (dc *DishController) List(c *gin.Context) {
	dishes, err := dc.svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	type dishOut struct {
		ID         uint            `json:"id"`
		Name       string          `json:"name"`
		Price      decimal.Decimal `json:"price"`
		Discount   decimal.Decimal `json:"discount"`
		FinalPrice decimal.Decimal `json:"finalPrice"`
		Image      string          `json:"image"`
	}
	items := make([]dishOut, 0, len(dishes))
	for i := range dishes {
		d := &dishes[i]
		items = append(items, dishOut{
			ID: d.ID, Name: d.Name, Price: d.Price, Discount: d.Discount,
			FinalPrice: d.FinalPrice(), Image: d.Image,
		})
	}
	resp.OK(c, gin.H{"items": items})
}

// saveImage handles the optional multipart dish picture.
func (dc *DishController) saveImage(c *gin.Context) (string, bool) {
	fh, err := c.FormFile("image")
	if err != nil {
		return "", false
	}
	path, err := utils.SaveUpload(c, fh, dc.cfg.UploadDir, utils.ImageExts, dc.cfg.MaxUploadSize)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return "", false
	}
	return path, true
}

// POST /admin/dishes (multipart: name, price, discount, image?)
func (dc *DishController) Create(c *gin.Context) {
	name := c.PostForm("name")
	price, err := decimal.NewFromString(c.PostForm("price"))
	if err != nil {
		resp.BadRequest(c, "invalid price")
		return
	}
	discount := decimal.NewFromInt(1)
	if v := c.PostForm("discount"); v != "" {
		if discount, err = decimal.NewFromString(v); err != nil {
			resp.BadRequest(c, "invalid discount")
			return
		}
	}

	image := ""
	if _, err := c.FormFile("image"); err == nil {
		var ok bool
		if image, ok = dc.saveImage(c); !ok {
			return
		}
	}

	dish, err := dc.svc.Create(name, price, discount, image)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, dish)
}

// PATCH /admin/dishes/:id (multipart: name?, price?, discount?, image?)
func (dc *DishController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var name, image *string
	var price, discount *decimal.Decimal

	if v := c.PostForm("name"); v != "" {
		name = &v
	}
	if v := c.PostForm("price"); v != "" {
		p, err := decimal.NewFromString(v)
		if err != nil {
			resp.BadRequest(c, "invalid price")
			return
		}
		price = &p
	}
	if v := c.PostForm("discount"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			resp.BadRequest(c, "invalid discount")
			return
		}
		discount = &d
	}
	if _, err := c.FormFile("image"); err == nil {
		path, ok := dc.saveImage(c)
		if !ok {
			return
		}
		image = &path
	}

	if err := dc.svc.Update(uint(id), name, price, discount, image); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"message": "dish updated"})
}

// DELETE /admin/dishes/:id, order items referencing the dish go with it.
func (dc *DishController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	if err := dc.svc.Delete(uint(id)); err != nil {
		resp.NotFound(c, "dish not found")
		return
	}
	resp.OK(c, gin.H{"message": "dish deleted"})
}
