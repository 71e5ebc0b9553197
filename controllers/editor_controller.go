package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type EditorController struct {
	svc *services.ManuscriptService
}

func NewEditorController(svc *services.ManuscriptService) *EditorController {
	return &EditorController{svc: svc}
}

// GET /editor/worklists
func (ec *EditorController) Worklists(c *gin.Context) {
	lists, err := ec.svc.WorklistsForEditor()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, lists)
}

type assignReq struct {
	ExpertID uint `json:"expertId" binding:"required"`
}

// PATCH /editor/manuscripts/:id/assign
func (ec *EditorController) Assign(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req assignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ec.svc.Assign(uint(id), req.ExpertID); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"message": "manuscript assigned"})
}

// PATCH /editor/manuscripts/:id/reassign also clears the prior reject reason.
func (ec *EditorController) Reassign(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req assignReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ec.svc.Reassign(uint(id), req.ExpertID); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"message": "manuscript reassigned"})
}

type decideReq struct {
	Action string `json:"action" binding:"required,oneof=accept reject"`
}

// PATCH /editor/manuscripts/:id/decision
func (ec *EditorController) Decide(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req decideReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ec.svc.Decide(uint(id), req.Action == "accept"); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"message": "decision recorded"})
}
