package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/entity"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) *services.ExportService {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := func(roles ...entity.Role) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	// Controllers
	authCtrl := controllers.NewAuthController(db, cfg)
	dishCtrl := controllers.NewDishController(db, cfg)
	orderCtrl := controllers.NewOrderController(db, cfg)
	adminOrderCtrl := controllers.NewAdminOrderController(db, cfg, orderCtrl.Service())
	subCtrl := controllers.NewSubmissionController(db, cfg)
	msCtrl := controllers.NewManuscriptController(db)
	editorCtrl := controllers.NewEditorController(msCtrl.Service())
	expertCtrl := controllers.NewExpertController(msCtrl.Service())
	chiefCtrl := controllers.NewChiefController(msCtrl.Service())

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", auth())
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
		aAuth.PATCH("/password", authCtrl.ChangePassword)
	}

	// Restaurant storefront (no login, customers identify by phone)
	r.GET("/dishes", dishCtrl.List)
	r.POST("/orders", orderCtrl.Create)
	r.GET("/orders", orderCtrl.ListByPhone)
	r.GET("/orders/:orderNo", orderCtrl.Detail)
	r.PATCH("/orders/:orderNo", orderCtrl.UpdateField)
	r.POST("/orders/:orderNo/items", orderCtrl.AddItem)
	r.PATCH("/orders/:orderNo/items", orderCtrl.UpdateItem)
	r.DELETE("/orders/:orderNo/items", orderCtrl.RemoveItem)

	// Restaurant back office (admin only)
	admin := r.Group("/admin", auth(entity.RoleAdmin))
	{
		admin.POST("/dishes", dishCtrl.Create)
		admin.PATCH("/dishes/:id", dishCtrl.Update)
		admin.DELETE("/dishes/:id", dishCtrl.Delete)

		admin.GET("/orders", adminOrderCtrl.Search)
		admin.PATCH("/orders/:orderNo", orderCtrl.UpdateField)
		admin.DELETE("/orders/:orderNo", adminOrderCtrl.Delete)
		admin.POST("/orders/export", adminOrderCtrl.Export)
		admin.GET("/sales", adminOrderCtrl.Sales)
	}

	// Author (submission wizard + paper status)
	author := r.Group("/author", auth(entity.RoleAuthor))
	{
		author.GET("/submission", subCtrl.Draft)
		author.POST("/submission/title", subCtrl.SetTitle)
		author.POST("/submission/author-name", subCtrl.SetAuthorName)
		author.POST("/submission/keywords", subCtrl.SetKeywords)
		author.POST("/submission/file", subCtrl.UploadFile)
		author.POST("/submission/confirm", subCtrl.Confirm)
		author.GET("/papers", msCtrl.AuthorPapers)
	}

	// Editor
	editor := r.Group("/editor", auth(entity.RoleEditor))
	{
		editor.GET("/worklists", editorCtrl.Worklists)
		editor.PATCH("/manuscripts/:id/assign", editorCtrl.Assign)
		editor.PATCH("/manuscripts/:id/reassign", editorCtrl.Reassign)
		editor.PATCH("/manuscripts/:id/decision", editorCtrl.Decide)
	}

	// Expert
	expert := r.Group("/expert", auth(entity.RoleExpert))
	{
		expert.GET("/queue", expertCtrl.Queue)
		expert.POST("/manuscripts/:id/review", expertCtrl.Review)
		expert.POST("/manuscripts/:id/reject", expertCtrl.Reject)
	}

	// Chief
	chief := r.Group("/chief", auth(entity.RoleChief))
	{
		chief.GET("/accepted", chiefCtrl.Accepted)
		chief.POST("/publish", chiefCtrl.Publish)
		chief.GET("/published", chiefCtrl.Published)
	}

	// Manuscript download, gated per role inside the service
	r.GET("/download/:id", auth(), msCtrl.Download)

	// handed back to main for the shutdown export hook
	return adminOrderCtrl.ExportService()
}
