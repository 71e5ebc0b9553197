package controllers

import (
	"backend/configs"
	"backend/pkg/resp"
	"backend/repository"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SubmissionController is the author's step-by-step submission wizard.
type SubmissionController struct {
	svc *services.SubmissionService
	cfg *configs.Config
}

func NewSubmissionController(db *gorm.DB, cfg *configs.Config) *SubmissionController {
	return &SubmissionController{
		svc: services.NewSubmissionService(db, repository.NewManuscriptRepository(db)),
		cfg: cfg,
	}
}

// GET /author/submission returns the current draft, for resuming the wizard.
func (sc *SubmissionController) Draft(c *gin.Context) {
	d, err := sc.svc.Draft(utils.CurrentUserID(c))
	if err != nil {
		resp.OK(c, gin.H{"draft": nil})
		return
	}
	resp.OK(c, gin.H{"draft": d})
}

// POST /author/submission/title
func (sc *SubmissionController) SetTitle(c *gin.Context) {
	var req struct {
		Title string `json:"title" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := sc.svc.SetTitle(utils.CurrentUserID(c), req.Title); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"message": "title saved"})
}

// POST /author/submission/author-name
func (sc *SubmissionController) SetAuthorName(c *gin.Context) {
	var req struct {
		AuthorName string `json:"authorName" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := sc.svc.SetAuthorName(utils.CurrentUserID(c), req.AuthorName); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"message": "author name saved"})
}

// POST /author/submission/keywords
func (sc *SubmissionController) SetKeywords(c *gin.Context) {
	var req struct {
		Keywords string `json:"keywords" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := sc.svc.SetKeywords(utils.CurrentUserID(c), req.Keywords); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"message": "keywords saved"})
}

// POST /author/submission/file (multipart), doc/docx/pdf only.
func (sc *SubmissionController) UploadFile(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		resp.BadRequest(c, "file is required")
		return
	}

	path, err := utils.SaveUpload(c, fh, sc.cfg.UploadDir, utils.ManuscriptExts, sc.cfg.MaxUploadSize)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := sc.svc.AttachFile(utils.CurrentUserID(c), path); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"message": "file uploaded", "path": path})
}

// POST /author/submission/confirm validates the whole draft, then submits.
func (sc *SubmissionController) Confirm(c *gin.Context) {
	m, err := sc.svc.Confirm(utils.CurrentUserID(c))
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, m)
}
