package controllers

import (
	"backend/configs"
	"backend/entity"
	"backend/pkg/resp"
	"backend/repository"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	svc *services.AuthService
}

func NewAuthController(db *gorm.DB, cfg *configs.Config) *AuthController {
	repo := repository.NewUserRepository(db)
	return &AuthController{svc: services.NewAuthService(repo, cfg.JWTSecret, cfg.JWTTTL)}
}

type registerReq struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required"`
	ConfirmPwd string `json:"confirmPwd" binding:"required"`
	Name       string `json:"name" binding:"required"`
}

// POST /auth/register, authors only.
func (ac *AuthController) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ac.svc.Register(req.Username, req.Password, req.ConfirmPwd, req.Name)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, user)
}

type loginReq struct {
	Username string      `json:"username" binding:"required"`
	Password string      `json:"password" binding:"required"`
	Role     entity.Role `json:"role" binding:"required"`
}

// POST /auth/login. Credentials are checked under the claimed role.
func (ac *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := ac.svc.Login(req.Username, req.Password, req.Role)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// GET /auth/me
func (ac *AuthController) Me(c *gin.Context) {
	user, err := ac.svc.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, user)
}

type updateMeReq struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// PATCH /auth/me
func (ac *AuthController) UpdateMe(c *gin.Context) {
	var req updateMeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ac.svc.UpdateProfile(utils.CurrentUserID(c), req.Name, req.Phone, req.Email)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, user)
}

type changePasswordReq struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
	ConfirmPwd  string `json:"confirmPwd" binding:"required"`
}

// PATCH /auth/password
func (ac *AuthController) ChangePassword(c *gin.Context) {
	var req changePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ac.svc.ChangePassword(utils.CurrentUserID(c), req.OldPassword, req.NewPassword, req.ConfirmPwd); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"message": "password changed"})
}
