package interfaces

import (
	"context"

	"toyauction/internal/domain/entities"
)

// IBidRepository reads the append-only bid ledger. Writes go through
// IAuctionRepository.ApplyBid so a bid row and its auction update commit
// together.

type IBidRepository interface {
	ListByAuctionID(ctx context.Context, auctionID string) ([]entities.Bid, error)
}
