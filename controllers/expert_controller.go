package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type ExpertController struct {
	svc *services.ManuscriptService
}

func NewExpertController(svc *services.ManuscriptService) *ExpertController {
	return &ExpertController{svc: svc}
}

// GET /expert/queue lists manuscripts assigned to the current expert.
func (xc *ExpertController) Queue(c *gin.Context) {
	papers, err := xc.svc.QueueForExpert(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": papers})
}

type reviewReq struct {
	Score   *int   `json:"score" binding:"required"`
	Opinion string `json:"opinion" binding:"required"`
}

// POST /expert/manuscripts/:id/review
func (xc *ExpertController) Review(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req reviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := xc.svc.Review(utils.CurrentUserID(c), uint(id), *req.Score, req.Opinion)
	if err != nil {
		if err == services.ErrNotAssigned {
			resp.Forbidden(c, err.Error())
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"message": "review submitted"})
}

type rejectReq struct {
	Reason string `json:"reason" binding:"required"`
}

// POST /expert/manuscripts/:id/reject
func (xc *ExpertController) Reject(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req rejectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := xc.svc.RejectReview(utils.CurrentUserID(c), uint(id), req.Reason)
	if err != nil {
		if err == services.ErrNotAssigned {
			resp.Forbidden(c, err.Error())
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"message": "review declined"})
}
