package controllers

import (
	"path/filepath"
	"strconv"

	"backend/pkg/resp"
	"backend/repository"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ManuscriptController covers the author's paper lists and the role-gated
// file download shared by every role.
type ManuscriptController struct {
	svc *services.ManuscriptService
}

func NewManuscriptController(db *gorm.DB) *ManuscriptController {
	return &ManuscriptController{
		svc: services.NewManuscriptService(db,
			repository.NewManuscriptRepository(db),
			repository.NewUserRepository(db)),
	}
}

// Service exposes the manuscript service for the editor/expert/chief wiring.
func (mc *ManuscriptController) Service() *services.ManuscriptService { return mc.svc }

// GET /author/papers
func (mc *ManuscriptController) AuthorPapers(c *gin.Context) {
	papers, err := mc.svc.PapersForAuthor(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, papers)
}

// GET /download/:id
func (mc *ManuscriptController) Download(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	path, err := mc.svc.FileForDownload(utils.CurrentUserID(c), utils.CurrentRole(c), uint(id))
	if err != nil {
		if err == services.ErrNotPermitted {
			resp.Forbidden(c, "not permitted to download this manuscript")
			return
		}
		resp.NotFound(c, "manuscript not found")
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}
