package interfaces

import (
	"context"
	"errors"
	"time"

	"toyauction/internal/domain/entities"
)

// ErrVersionConflict is returned by ApplyBid when the auction changed between
// the caller's read and the conditional write. The caller re-reads and
// re-validates; it must never blindly retry the same write.
var ErrVersionConflict = errors.New("auction version conflict")

// IAuctionRepository abstracts DynamoDB persistence for Auction.
//
// Conventions follow the rest of the persistence layer: lookups return the
// zero value (not an error) when the item is absent, and conditional state
// transitions return the zero value when the condition no longer holds.

type IAuctionRepository interface {
	Create(ctx context.Context, a entities.Auction) (entities.Auction, error)
	GetByID(ctx context.Context, id string) (entities.Auction, error)
	List(ctx context.Context) ([]entities.Auction, error)

	// ListExpiredActive returns active auctions whose expiry has passed.
	ListExpiredActive(ctx context.Context, now time.Time) ([]entities.Auction, error)
	ListActive(ctx context.Context) ([]entities.Auction, error)

	// ApplyBid writes the bid row and the updated auction as one transaction.
	// The auction update is conditioned on the version the caller read
	// (a.Version); the stored version is incremented. Returns
	// ErrVersionConflict when a concurrent writer won.
	ApplyBid(ctx context.Context, a entities.Auction, b entities.Bid) (entities.Auction, error)

	// Close transitions active -> ended, setting finalPrice, conditioned on
	// the auction still being active at write time. Returns the zero value
	// when the auction is missing or already ended.
	Close(ctx context.Context, id string, finalPrice float64, now time.Time) (entities.Auction, error)

	// SetPaymentQR mirrors the generated QR onto the auction. Best-effort.
	SetPaymentQR(ctx context.Context, id, qr string) error
}
