package controllers

import (
	"errors"
	"strconv"

	"github.com/Thariq15/react-cafe/pkg/metrics"
	"github.com/Thariq15/react-cafe/pkg/resp"
	"github.com/Thariq15/react-cafe/repository"
	"github.com/Thariq15/react-cafe/services"
	"github.com/Thariq15/react-cafe/utils"
	"github.com/gin-gonic/gin"
)

type TransactionController struct {
	Checkout *services.CheckoutService
	Svc      *services.TransactionService
	Metrics  *metrics.ServerMetrics
}

func NewTransactionController(checkout *services.CheckoutService, svc *services.TransactionService, m *metrics.ServerMetrics) *TransactionController {
	return &TransactionController{Checkout: checkout, Svc: svc, Metrics: m}
}

type checkoutIn struct {
	PromoCode string `json:"promoCode"`
}

// POST /checkout
func (h *TransactionController) DoCheckout(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "login required")
		return
	}

	var in checkoutIn
	if err := c.ShouldBindJSON(&in); err != nil && c.Request.ContentLength > 0 {
		resp.BadRequest(c, err.Error())
		return
	}

	trx, err := h.Checkout.Checkout(uid, in.PromoCode)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart),
			errors.Is(err, services.ErrInvalidPromoCode):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	if h.Metrics != nil {
		h.Metrics.Checkouts.Inc()
	}
	resp.Created(c, trx)
}

// GET /profile/transactions
func (h *TransactionController) ListMine(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "login required")
		return
	}

	txs, err := h.Svc.ListForUser(uid)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, txs)
}

// GET /admin/transactions
func (h *TransactionController) ListAll(c *gin.Context) {
	txs, err := h.Svc.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, txs)
}

type setStatusIn struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /admin/transactions/:id/status
func (h *TransactionController) SetStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid transaction id")
		return
	}

	var in setStatusIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.SetStatus(uint(id), in.Status); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, repository.ErrTransactionNotFound):
			resp.NotFound(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	if h.Metrics != nil {
		h.Metrics.StatusUpdates.WithLabelValues(in.Status).Inc()
	}
	resp.OK(c, gin.H{"status": in.Status})
}
