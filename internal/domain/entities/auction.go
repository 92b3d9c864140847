package entities

import "time"

// AuctionStatus is the auction lifecycle state.
//
// Domain notes:
//   - "ended" is terminal: no bid is accepted and no sweep touches the
//     auction again once it is set.

type AuctionStatus string

const (
	AuctionStatusActive AuctionStatus = "active"
	AuctionStatusEnded  AuctionStatus = "ended"
)

// Auction is the time-bounded sale object persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-index): PK status, SK expires_at, which drives the expiry
//     sweep and the force-end-all selection.
//
// Concurrency:
//   - Version guards every bid write. The repository conditions the auction
//     update on the version read by the caller, so two concurrent bids can
//     never both commit against the same price.
//
// HighestBidderContact is a snapshot field: it is copied from the bidder at
// bid time so winner notification survives later profile edits. SellerPromptPay
// is the owner's payout target snapshotted at creation for the payment QR.

type Auction struct {
	ID                   string        `json:"id"`
	Name                 string        `json:"name"`
	Image                string        `json:"image,omitempty"`
	StartingPrice        float64       `json:"starting_price"`
	CurrentPrice         float64       `json:"current_price"`
	MinimumBidIncrement  float64       `json:"minimum_bid_increment"`
	ExpiresAt            time.Time     `json:"expires_at"`
	Status               AuctionStatus `json:"status"`
	FinalPrice           float64       `json:"final_price,omitempty"`
	OwnerID              string        `json:"owner_id"`
	SellerPromptPay      string        `json:"seller_promptpay,omitempty"`
	HighestBidderID      string        `json:"highest_bidder_id,omitempty"`
	HighestBidderContact string        `json:"highest_bidder_contact,omitempty"`
	BidIDs               []string      `json:"bid_ids,omitempty"`
	PaymentQR            string        `json:"payment_qr,omitempty"`
	Version              int64         `json:"version"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}

// Ended reports whether the auction has reached its terminal state.
func (a Auction) Ended() bool { return a.Status == AuctionStatusEnded }
