package controllers

import (
	"github.com/Thariq15/react-cafe/configs"
	"github.com/Thariq15/react-cafe/pkg/resp"
	"github.com/Thariq15/react-cafe/repository"
	"github.com/Thariq15/react-cafe/services"
	"github.com/Thariq15/react-cafe/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(db *gorm.DB, cfg *configs.Config) *AuthController {
	repo := repository.NewUserRepository(db)
	return &AuthController{Svc: services.NewAuthService(repo, cfg.JWTSecret, cfg.JWTTTL)}
}

type registerIn struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// POST /auth/register
func (h *AuthController) Register(c *gin.Context) {
	var in registerIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := h.Svc.Register(in.Email, in.Password, in.FirstName, in.LastName)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, user)
}

type loginIn struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func (h *AuthController) Login(c *gin.Context) {
	var in loginIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := h.Svc.Login(in.Email, in.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// GET /auth/me
func (h *AuthController) Me(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "login required")
		return
	}

	user, err := h.Svc.GetProfile(uid)
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, user)
}
