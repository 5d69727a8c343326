package controllers

import (
	"errors"
	"strconv"

	"github.com/Thariq15/react-cafe/pkg/resp"
	"github.com/Thariq15/react-cafe/repository"
	"github.com/Thariq15/react-cafe/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuController struct{ Svc *services.MenuService }

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{Svc: services.NewMenuService(repository.NewMenuRepository(db))}
}

// GET /menu
func (h *MenuController) List(c *gin.Context) {
	items, err := h.Svc.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /menu/:id
func (h *MenuController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid menu id")
		return
	}

	m, err := h.Svc.Get(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrMenuItemNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, m)
}

// POST /admin/menu
func (h *MenuController) Create(c *gin.Context) {
	var in services.AddMenuItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	m, err := h.Svc.Create(&in)
	if err != nil {
		if errors.Is(err, services.ErrMenuFieldsRequired) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, m)
}
