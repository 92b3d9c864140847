package routes

import (
	"toyauction/internal/adapter/http/handlers"
	"toyauction/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

const PathAuctions = "/auctions"

func addAuctionRoutes(rg *gin.RouterGroup, h *handlers.AuctionHandler, sessions interfaces.ISessionStore) {
	auctions := rg.Group(PathAuctions)
	{
		// Browsing is public; listing and bidding need a logged-in user.
		auctions.GET("", h.ListAuctions)
		auctions.GET("/:id", h.GetAuction)
		auctions.GET("/:id/bids", h.GetBidHistory)

		auctions.POST("", authMiddleware(sessions), h.CreateAuction)
		auctions.POST("/:id/bids", authMiddleware(sessions), h.PlaceBid)
	}
}
