package handlers

import (
	"errors"
	"net/http"
	"time"

	"toyauction/internal/adapter/http/dto/request"
	"toyauction/internal/adapter/http/dto/response"
	"toyauction/internal/adapter/http/middleware"
	"toyauction/internal/usecase"
	"toyauction/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AuctionHandler handles HTTP requests for the bidding lifecycle.

type AuctionHandler struct {
	usecase usecase.IAuctionUseCase
}

func NewAuctionHandler(uc usecase.IAuctionUseCase) *AuctionHandler {
	return &AuctionHandler{usecase: uc}
}

// CreateAuction lists a new item for bidding.
func (h *AuctionHandler) CreateAuction(c *gin.Context) {
	var req request.CreateAuctionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}

	expiresAt, err := req.ResolveExpiry(time.Now().UTC())
	if err != nil {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid auction expiry", http.StatusBadRequest))
		return
	}

	created, err := h.usecase.CreateAuction(c.Request.Context(), usecase.CreateAuctionInput{
		Name:                req.Name,
		Image:               req.Image,
		StartingPrice:       req.StartingPrice,
		MinimumBidIncrement: req.MinimumBidIncrement,
		ExpiresAt:           expiresAt,
		OwnerID:             c.GetString(middleware.ContextUserID),
	})
	if err != nil {
		writeError(c, mapAuctionError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromAuction(created))
}

// ListAuctions returns every auction, newest listing first left to the client.
func (h *AuctionHandler) ListAuctions(c *gin.Context) {
	auctions, err := h.usecase.ListAuctions(c.Request.Context())
	if err != nil {
		writeError(c, mapAuctionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAuctions(auctions))
}

// GetAuction returns one auction by id.
func (h *AuctionHandler) GetAuction(c *gin.Context) {
	a, err := h.usecase.GetAuctionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapAuctionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromAuction(a))
}

// GetBidHistory returns the bid ledger for one auction.
func (h *AuctionHandler) GetBidHistory(c *gin.Context) {
	bids, err := h.usecase.GetBidHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapAuctionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBids(bids))
}

// PlaceBid submits a bid on behalf of the authenticated user.
func (h *AuctionHandler) PlaceBid(c *gin.Context) {
	var req request.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest))
		return
	}

	updated, bid, err := h.usecase.PlaceBid(c.Request.Context(), usecase.PlaceBidInput{
		AuctionID: c.Param("id"),
		UserID:    c.GetString(middleware.ContextUserID),
		Contact:   c.GetString(middleware.ContextUserEmail),
		Amount:    req.Amount,
	})
	if err != nil {
		logrus.WithError(err).WithField("auction_id", c.Param("id")).Info("bid rejected")
		writeError(c, mapAuctionError(err))
		return
	}

	c.JSON(http.StatusCreated, response.BidPlacedResponse{
		Auction: response.FromAuction(updated),
		Bid:     response.FromBid(bid),
	})
}

func mapAuctionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAuctionInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAuctionNotFound):
		return pkg.NewDomainErrorSimple("AUCTION_NOT_FOUND", "Auction not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBidTooLow):
		return pkg.NewDomainErrorSimple("BID_TOO_LOW", "Bid amount is below the minimum acceptable bid", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAuctionEnded):
		return pkg.NewDomainErrorSimple("AUCTION_ENDED", "Auction has ended", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAuctionAlreadyEnded):
		return pkg.NewDomainErrorSimple("AUCTION_ALREADY_ENDED", "Auction already ended", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCannotBidOwnAuction):
		return pkg.NewDomainErrorSimple("OWN_AUCTION_BID", "Sellers cannot bid on their own auctions", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBidConflict):
		return pkg.NewDomainErrorSimple("BID_CONFLICT", "Auction is receiving concurrent bids, please retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
