package controllers

import (
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type ChiefController struct {
	svc *services.ManuscriptService
}

func NewChiefController(svc *services.ManuscriptService) *ChiefController {
	return &ChiefController{svc: svc}
}

// GET /chief/accepted
func (cc *ChiefController) Accepted(c *gin.Context) {
	papers, err := cc.svc.AcceptedPapers()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": papers})
}

type publishReq struct {
	// manuscript id -> print order
	SortNums map[uint]int `json:"sortNums" binding:"required"`
}

// POST /chief/publish publishes each accepted manuscript with its print order.
func (cc *ChiefController) Publish(c *gin.Context) {
	var req publishReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	for id, sortNum := range req.SortNums {
		if err := cc.svc.Publish(id, sortNum); err != nil {
			resp.BadRequest(c, err.Error())
			return
		}
	}
	resp.OK(c, gin.H{"message": "manuscripts published"})
}

// GET /chief/published, in print order.
func (cc *ChiefController) Published(c *gin.Context) {
	papers, err := cc.svc.PublishedPapers()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": papers})
}
