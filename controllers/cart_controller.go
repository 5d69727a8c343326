package controllers

import (
	"errors"
	"strconv"

	"github.com/Thariq15/react-cafe/pkg/resp"
	"github.com/Thariq15/react-cafe/repository"
	"github.com/Thariq15/react-cafe/services"
	"github.com/Thariq15/react-cafe/utils"
	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(svc *services.CartService) *CartController {
	return &CartController{Svc: svc}
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "login required")
		return
	}

	items, totals, err := h.Svc.Get(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items, "totals": totals})
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "login required")
		return
	}

	var in services.AddToCartIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.Add(uid, &in); err != nil {
		switch {
		case errors.Is(err, repository.ErrMenuItemNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrQuantityTooLow):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, gin.H{"added": true})
}

type adjustQtyIn struct {
	Delta int `json:"delta" binding:"required"`
}

// PATCH /cart/items/:id
func (h *CartController) AdjustQuantity(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "login required")
		return
	}

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}

	var in adjustQtyIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.AdjustQuantity(uid, uint(itemID), in.Delta); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /cart/items/:id
func (h *CartController) RemoveItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "login required")
		return
	}

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid item id")
		return
	}

	if err := h.Svc.RemoveItem(uid, uint(itemID)); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": true})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "login required")
		return
	}

	if err := h.Svc.Clear(uid); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}

type applyPromoIn struct {
	Code string `json:"code"`
}

// POST /cart/promo
// Previews the cart totals under a promo code. An empty code and an unknown
// code both price at zero discount, but the client gets told which happened.
func (h *CartController) ApplyPromo(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "login required")
		return
	}

	var in applyPromoIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	pct, err := services.EvaluatePromo(in.Code)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	items, _, err := h.Svc.Get(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"discount": pct, "totals": services.ComputeTotals(items, pct)})
}
