package handlers

import (
	"errors"
	"io"
	"net/http"

	"toyauction/internal/adapter/http/dto/request"
	"toyauction/internal/adapter/http/dto/response"
	"toyauction/internal/adapter/http/middleware"
	"toyauction/internal/domain/entities"
	"toyauction/internal/usecase"
	"toyauction/pkg"

	"github.com/gin-gonic/gin"
)

// 5 MB is plenty for a camera shot of a bank slip.
const maxSlipSizeBytes = 5 << 20

// PaymentHandler handles HTTP requests for payment reconciliation.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// GenerateQR issues (or re-issues) the PromptPay QR for an auction's winner.
func (h *PaymentHandler) GenerateQR(c *gin.Context) {
	var req request.GenerateQRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}

	p, err := h.usecase.GenerateQR(c.Request.Context(), req.AuctionID, c.GetString(middleware.ContextUserID))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// UploadSlip accepts the proof-of-payment image as multipart field "slip".
func (h *PaymentHandler) UploadSlip(c *gin.Context) {
	file, err := c.FormFile("slip")
	if err != nil || file.Size == 0 || file.Size > maxSlipSizeBytes {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "A slip image up to 5MB is required", http.StatusBadRequest))
		return
	}

	src, err := file.Open()
	if err != nil {
		writeError(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		writeError(c, pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError))
		return
	}

	p, err := h.usecase.UploadSlip(c.Request.Context(),
		c.Param("paymentId"), c.GetString(middleware.ContextUserID), file.Filename, data)
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// CheckStatus returns the caller's payment by id.
func (h *PaymentHandler) CheckStatus(c *gin.Context) {
	p, err := h.usecase.CheckStatus(c.Request.Context(), c.Param("id"), c.GetString(middleware.ContextUserID))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// GetSlipByAuction returns the latest payment record for an auction, which
// carries the current slip. Sellers use this to review incoming transfers.
func (h *PaymentHandler) GetSlipByAuction(c *gin.Context) {
	p, err := h.usecase.GetSlipByAuction(c.Request.Context(), c.Param("auctionId"))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// ListMine returns every payment belonging to the caller.
func (h *PaymentHandler) ListMine(c *gin.Context) {
	payments, err := h.usecase.ListMine(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// ConfirmPaymentByAuction lets the seller approve the latest payment on their
// auction after seeing the transfer arrive.
func (h *PaymentHandler) ConfirmPaymentByAuction(c *gin.Context) {
	p, err := h.usecase.ConfirmPaymentByAuction(c.Request.Context(),
		c.Param("auctionId"), c.GetString(middleware.ContextUserID))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// UpdateShippingStatus moves the shipment forward (seller side).
func (h *PaymentHandler) UpdateShippingStatus(c *gin.Context) {
	var req request.ShippingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}

	p, err := h.usecase.UpdateShippingStatus(c.Request.Context(),
		c.Param("paymentId"), entities.ShippingStatus(req.ShippingStatus), req.TrackingNumber)
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// UpdateShippingAddress records where the item should be sent (buyer side).
func (h *PaymentHandler) UpdateShippingAddress(c *gin.Context) {
	var req request.ShippingAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}

	p, err := h.usecase.UpdateShippingAddress(c.Request.Context(), usecase.UpdateShippingAddressInput{
		PaymentID:      c.Param("paymentId"),
		UserID:         c.GetString(middleware.ContextUserID),
		Address:        req.Address,
		RecipientName:  req.RecipientName,
		RecipientPhone: req.RecipientPhone,
		Note:           req.Note,
	})
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// ConfirmDelivery is the buyer acknowledging receipt of the item.
func (h *PaymentHandler) ConfirmDelivery(c *gin.Context) {
	p, err := h.usecase.ConfirmDelivery(c.Request.Context(),
		c.Param("auctionId"), c.GetString(middleware.ContextUserID))
	if err != nil {
		writeError(c, mapPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAuctionNotFound):
		return pkg.NewDomainErrorSimple("AUCTION_NOT_FOUND", "Auction not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAuctionNotEnded):
		return pkg.NewDomainErrorSimple("AUCTION_NOT_ENDED", "Auction has not ended yet", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoWinningBidder):
		return pkg.NewDomainErrorSimple("NO_WINNING_BIDDER", "Auction closed without a winning bidder", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotWinningBidder), errors.Is(err, usecase.ErrNotPaymentOwner):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "You are not allowed to act on this payment", http.StatusForbidden)
	case errors.Is(err, usecase.ErrMissingPayoutInfo):
		return pkg.NewDomainErrorSimple("MISSING_PAYOUT_INFO", "Seller has no PromptPay target configured", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSlipNotUploaded):
		return pkg.NewDomainErrorSimple("SLIP_NOT_UPLOADED", "Upload the payment slip before setting a shipping address", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrShipmentNotDelivered):
		return pkg.NewDomainErrorSimple("SHIPMENT_NOT_DELIVERED", "Shipment has not been delivered yet", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidShippingStatus):
		return pkg.NewDomainErrorSimple("INVALID_SHIPPING_STATUS", "Unknown or disallowed shipping status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrShippingRegression):
		return pkg.NewDomainErrorSimple("SHIPPING_REGRESSION", "Shipping status cannot move backwards", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidDateRange):
		return pkg.NewDomainErrorSimple("INVALID_DATE_RANGE", "Invalid date range", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
