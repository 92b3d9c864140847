package response

import (
	"time"

	"toyauction/internal/domain/entities"
)

type AuctionResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Image               string    `json:"image,omitempty"`
	StartingPrice       float64   `json:"starting_price"`
	CurrentPrice        float64   `json:"current_price"`
	MinimumBidIncrement float64   `json:"minimum_bid_increment"`
	ExpiresAt           time.Time `json:"expires_at"`
	Status              string    `json:"status"`
	FinalPrice          float64   `json:"final_price,omitempty"`
	OwnerID             string    `json:"owner_id"`
	HighestBidderID     string    `json:"highest_bidder_id,omitempty"`
	BidCount            int       `json:"bid_count"`
	PaymentQR           string    `json:"payment_qr,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

func FromAuction(a entities.Auction) AuctionResponse {
	return AuctionResponse{
		ID:                  a.ID,
		Name:                a.Name,
		Image:               a.Image,
		StartingPrice:       a.StartingPrice,
		CurrentPrice:        a.CurrentPrice,
		MinimumBidIncrement: a.MinimumBidIncrement,
		ExpiresAt:           a.ExpiresAt,
		Status:              string(a.Status),
		FinalPrice:          a.FinalPrice,
		OwnerID:             a.OwnerID,
		HighestBidderID:     a.HighestBidderID,
		BidCount:            len(a.BidIDs),
		PaymentQR:           a.PaymentQR,
		CreatedAt:           a.CreatedAt,
	}
}

func FromAuctions(auctions []entities.Auction) []AuctionResponse {
	out := make([]AuctionResponse, 0, len(auctions))
	for _, a := range auctions {
		out = append(out, FromAuction(a))
	}
	return out
}

type BidResponse struct {
	ID        string    `json:"id"`
	AuctionID string    `json:"auction_id"`
	UserID    string    `json:"user_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

func FromBid(b entities.Bid) BidResponse {
	return BidResponse{
		ID:        b.ID,
		AuctionID: b.AuctionID,
		UserID:    b.UserID,
		Amount:    b.Amount,
		CreatedAt: b.CreatedAt,
	}
}

// BidPlacedResponse pairs the refreshed auction with the bid it accepted.
type BidPlacedResponse struct {
	Auction AuctionResponse `json:"auction"`
	Bid     BidResponse     `json:"bid"`
}

func FromBids(bids []entities.Bid) []BidResponse {
	out := make([]BidResponse, 0, len(bids))
	for _, b := range bids {
		out = append(out, FromBid(b))
	}
	return out
}
