package interfaces

import (
	"context"
	"errors"
	"time"

	"toyauction/internal/domain/entities"
)

// ErrDuplicateUnpaid is returned by CreateUnpaid when an unpaid payment for
// the same (auction, user) pair already exists. Callers resolve it by
// re-fetching the existing record, never by surfacing an error.
var ErrDuplicateUnpaid = errors.New("unpaid payment already exists")

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// CreateUnpaid and Approve maintain the unpaid-uniqueness guard item
// transactionally; everything else is a plain conditional read/update.

type IPaymentRepository interface {
	CreateUnpaid(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	GetUnpaidByAuctionAndUser(ctx context.Context, auctionID, userID string) (entities.Payment, error)
	GetLatestByAuctionID(ctx context.Context, auctionID string) (entities.Payment, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Payment, error)
	ListByStatus(ctx context.Context, statuses ...entities.PaymentStatus) ([]entities.Payment, error)
	ListPaidBetween(ctx context.Context, start, end time.Time) ([]entities.Payment, error)

	SetSlip(ctx context.Context, id, slipImage string) (entities.Payment, error)
	Approve(ctx context.Context, id string, confirmedAt time.Time) (entities.Payment, error)
	Reject(ctx context.Context, id string) (entities.Payment, error)
	UpdateShipping(ctx context.Context, id string, status entities.ShippingStatus, trackingNumber string) (entities.Payment, error)
	UpdateShippingAddress(ctx context.Context, id, address, recipientName, recipientPhone, note string) (entities.Payment, error)

	// ConfirmDelivery sets shipping completed + the confirmation timestamp,
	// conditioned on the shipment still being in the delivered state. Returns
	// the zero value when the condition no longer holds.
	ConfirmDelivery(ctx context.Context, id string, confirmedAt time.Time) (entities.Payment, error)
}
