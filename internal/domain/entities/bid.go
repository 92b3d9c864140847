package entities

import "time"

// Bid is an immutable offer on one auction by one bidder.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (auction_id-index): auction_id
//
// A bid row is written in the same transaction as the auction update that
// accepted it and is never mutated or deleted afterwards.

type Bid struct {
	ID        string    `json:"id"`
	AuctionID string    `json:"auction_id"`
	UserID    string    `json:"user_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}
