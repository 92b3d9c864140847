package handlers

import (
	"net/http"
	"time"

	"toyauction/internal/adapter/http/dto/request"
	"toyauction/internal/adapter/http/dto/response"
	"toyauction/internal/usecase"
	"toyauction/pkg"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles the operator surface: force-end controls and the
// payment review queue.

type AdminHandler struct {
	auctions usecase.IAuctionUseCase
	payments usecase.IPaymentUseCase
}

func NewAdminHandler(auctions usecase.IAuctionUseCase, payments usecase.IPaymentUseCase) *AdminHandler {
	return &AdminHandler{auctions: auctions, payments: payments}
}

// ListAuctions returns every auction for the operator dashboard.
func (h *AdminHandler) ListAuctions(c *gin.Context) {
	auctions, err := h.auctions.ListAuctions(c.Request.Context())
	if err != nil {
		writeError(c, mapAuctionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAuctions(auctions))
}

// ForceEndAuction ends one auction immediately at its current price.
func (h *AdminHandler) ForceEndAuction(c *gin.Context) {
	a, err := h.auctions.ForceEndAuction(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapAuctionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAuction(a))
}

// ForceEndAllActive ends every active auction. Destructive, so the body must
// carry an explicit confirm flag.
func (h *AdminHandler) ForceEndAllActive(c *gin.Context) {
	var req request.ForceEndAllRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, pkg.NewDomainErrorSimple("CONFIRMATION_REQUIRED", "Body must include confirm:true", http.StatusBadRequest))
		return
	}

	closed, err := h.auctions.ForceEndAllActive(c.Request.Context())
	if err != nil {
		writeError(c, mapAuctionError(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"closed": closed})
}

// ListPendingPayments returns payments awaiting review (pending + uploaded).
func (h *AdminHandler) ListPendingPayments(c *gin.Context) {
	payments, err := h.payments.ListPending(c.Request.Context())
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// ListPaidPayments returns payments confirmed inside [start, end].
// Both bounds are RFC3339 query params.
func (h *AdminHandler) ListPaidPayments(c *gin.Context) {
	start, errStart := time.Parse(time.RFC3339, c.Query("start"))
	end, errEnd := time.Parse(time.RFC3339, c.Query("end"))
	if errStart != nil || errEnd != nil {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_DATE_RANGE", "start and end must be RFC3339 timestamps", http.StatusBadRequest))
		return
	}

	payments, err := h.payments.ListPaidBetween(c.Request.Context(), start, end)
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// GetPayment returns one payment for review.
func (h *AdminHandler) GetPayment(c *gin.Context) {
	p, err := h.payments.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// ApprovePayment marks the slip as verified and the payment as paid.
func (h *AdminHandler) ApprovePayment(c *gin.Context) {
	p, err := h.payments.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// RejectPayment sends the slip back to the buyer.
func (h *AdminHandler) RejectPayment(c *gin.Context) {
	p, err := h.payments.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}
