package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"toyauction/internal/domain/entities"
	"toyauction/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrInvalidPaymentInput   = errors.New("invalid payment input")
	ErrAuctionNotEnded       = errors.New("auction has not ended")
	ErrNoWinningBidder       = errors.New("auction has no winning bidder")
	ErrNotWinningBidder      = errors.New("caller is not the winning bidder")
	ErrMissingPayoutInfo     = errors.New("seller has no payout target")
	ErrSlipNotUploaded       = errors.New("payment slip not uploaded")
	ErrNotPaymentOwner       = errors.New("payment belongs to another user")
	ErrShipmentNotDelivered  = errors.New("shipment not delivered yet")
	ErrInvalidShippingStatus = errors.New("invalid shipping status")
	ErrShippingRegression    = errors.New("shipping status cannot move backwards")
	ErrInvalidDateRange      = errors.New("invalid date range")
)

const defaultQRTTLMinutes = 15

type UpdateShippingAddressInput struct {
	PaymentID      string
	UserID         string
	Address        string
	RecipientName  string
	RecipientPhone string
	Note           string
}

// IPaymentUseCase covers payment reconciliation for ended auctions: QR
// issuance, slip upload and review, shipping and the buyer's delivery
// confirmation.

type IPaymentUseCase interface {
	// GenerateQR returns the open payment for (auction, winner), creating it
	// on first call. Idempotent: while an unpaid record exists, repeat calls
	// return it instead of minting a new QR.
	GenerateQR(ctx context.Context, auctionID, userID string) (entities.Payment, error)

	UploadSlip(ctx context.Context, paymentID, userID, filename string, data []byte) (entities.Payment, error)
	CheckStatus(ctx context.Context, paymentID, userID string) (entities.Payment, error)
	GetSlipByAuction(ctx context.Context, auctionID string) (entities.Payment, error)
	ListMine(ctx context.Context, userID string) ([]entities.Payment, error)
	ConfirmPaymentByAuction(ctx context.Context, auctionID, userID string) (entities.Payment, error)
	UpdateShippingAddress(ctx context.Context, input UpdateShippingAddressInput) (entities.Payment, error)
	ConfirmDelivery(ctx context.Context, auctionID, userID string) (entities.Payment, error)

	// Admin review surface.
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListPending(ctx context.Context) ([]entities.Payment, error)
	ListPaidBetween(ctx context.Context, start, end time.Time) ([]entities.Payment, error)
	Approve(ctx context.Context, paymentID string) (entities.Payment, error)
	Reject(ctx context.Context, paymentID string) (entities.Payment, error)
	UpdateShippingStatus(ctx context.Context, paymentID string, status entities.ShippingStatus, trackingNumber string) (entities.Payment, error)
}

type PaymentUseCase struct {
	repo         interfaces.IPaymentRepository
	auctionRepo  interfaces.IAuctionRepository
	profileRepo  interfaces.IProfileRepository
	qrService    interfaces.IQRService
	slipStore    interfaces.ISlipStore
	qrTTLMinutes int
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	repo interfaces.IPaymentRepository,
	auctionRepo interfaces.IAuctionRepository,
	profileRepo interfaces.IProfileRepository,
	qrService interfaces.IQRService,
	slipStore interfaces.ISlipStore,
	qrTTLMinutes int,
) *PaymentUseCase {
	if qrTTLMinutes <= 0 {
		qrTTLMinutes = defaultQRTTLMinutes
	}
	return &PaymentUseCase{
		repo:         repo,
		auctionRepo:  auctionRepo,
		profileRepo:  profileRepo,
		qrService:    qrService,
		slipStore:    slipStore,
		qrTTLMinutes: qrTTLMinutes,
	}
}

func (u *PaymentUseCase) GenerateQR(ctx context.Context, auctionID, userID string) (entities.Payment, error) {
	auctionID = strings.TrimSpace(auctionID)
	if auctionID == "" || userID == "" {
		return entities.Payment{}, ErrInvalidPaymentInput
	}

	a, err := u.auctionRepo.GetByID(ctx, auctionID)
	if err != nil {
		return entities.Payment{}, err
	}
	if a.ID == "" {
		return entities.Payment{}, ErrAuctionNotFound
	}
	if !a.Ended() {
		return entities.Payment{}, ErrAuctionNotEnded
	}
	if a.HighestBidderID == "" {
		return entities.Payment{}, ErrNoWinningBidder
	}
	if a.HighestBidderID != userID {
		return entities.Payment{}, ErrNotWinningBidder
	}

	// Idempotency: an existing unpaid record (even a rejected one awaiting a
	// new slip) is returned as-is rather than replaced.
	existing, err := u.repo.GetUnpaidByAuctionAndUser(ctx, auctionID, userID)
	if err != nil {
		return entities.Payment{}, err
	}
	if existing.ID != "" {
		return existing, nil
	}

	target := a.SellerPromptPay
	if target == "" {
		profile, err := u.profileRepo.GetByUserID(ctx, a.OwnerID)
		if err != nil {
			return entities.Payment{}, err
		}
		target = profile.PayoutTarget()
	}
	if target == "" {
		return entities.Payment{}, ErrMissingPayoutInfo
	}

	qr, err := u.qrService.PaymentQR(target, a.FinalPrice)
	if err != nil {
		return entities.Payment{}, err
	}

	now := time.Now().UTC()
	p := entities.Payment{
		ID:             uuid.NewString(),
		AuctionID:      auctionID,
		UserID:         userID,
		Amount:         a.FinalPrice,
		QRCode:         qr,
		Status:         entities.PaymentStatusPending,
		ShippingStatus: entities.ShippingNotSent,
		ExpiresAt:      now.Add(time.Duration(u.qrTTLMinutes) * time.Minute),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	// Prefill the shipping snapshot from the buyer's default address; the
	// buyer can still override it later through the address form.
	buyer, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return entities.Payment{}, err
	}
	if addr, ok := buyer.DefaultAddress(); ok {
		p.ShippingAddress = addr.FullAddress
		p.RecipientName = addr.Name
		p.RecipientPhone = addr.Phone
	}
	if p.RecipientName == "" {
		p.RecipientName = buyer.Name
	}
	if p.RecipientPhone == "" {
		p.RecipientPhone = buyer.Phone
	}

	created, err := u.repo.CreateUnpaid(ctx, p)
	if errors.Is(err, interfaces.ErrDuplicateUnpaid) {
		// A concurrent call won the creation race; use its record.
		return u.repo.GetUnpaidByAuctionAndUser(ctx, auctionID, userID)
	}
	if err != nil {
		return entities.Payment{}, err
	}

	// Mirror onto the auction so listing surfaces can show the QR without a
	// second lookup. Best-effort: the payment record is the source of truth.
	if err := u.auctionRepo.SetPaymentQR(ctx, auctionID, qr); err != nil {
		logrus.WithError(err).WithField("auction_id", auctionID).Warn("failed to mirror payment qr")
	}

	logrus.WithFields(logrus.Fields{
		"payment_id": created.ID,
		"auction_id": auctionID,
		"amount":     created.Amount,
	}).Info("payment qr generated")
	return created, nil
}

func (u *PaymentUseCase) UploadSlip(ctx context.Context, paymentID, userID, filename string, data []byte) (entities.Payment, error) {
	if len(data) == 0 {
		return entities.Payment{}, ErrInvalidPaymentInput
	}

	p, err := u.getOwned(ctx, paymentID, userID)
	if err != nil {
		return entities.Payment{}, err
	}

	path, err := u.slipStore.Save(ctx, filename, data)
	if err != nil {
		return entities.Payment{}, err
	}

	updated, err := u.repo.SetSlip(ctx, p.ID, path)
	if err != nil {
		return entities.Payment{}, err
	}
	if updated.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}

	logrus.WithFields(logrus.Fields{
		"payment_id": updated.ID,
		"slip_image": path,
	}).Info("payment slip uploaded")
	return updated, nil
}

func (u *PaymentUseCase) CheckStatus(ctx context.Context, paymentID, userID string) (entities.Payment, error) {
	return u.getOwned(ctx, paymentID, userID)
}

func (u *PaymentUseCase) GetSlipByAuction(ctx context.Context, auctionID string) (entities.Payment, error) {
	auctionID = strings.TrimSpace(auctionID)
	if auctionID == "" {
		return entities.Payment{}, ErrInvalidPaymentInput
	}

	p, err := u.repo.GetLatestByAuctionID(ctx, auctionID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListMine(ctx context.Context, userID string) ([]entities.Payment, error) {
	if userID == "" {
		return nil, ErrInvalidPaymentInput
	}
	return u.repo.ListByUserID(ctx, userID)
}

// ConfirmPaymentByAuction is the seller-side manual confirmation path: the
// seller saw the transfer arrive and approves the latest payment themselves
// without waiting for admin review.
func (u *PaymentUseCase) ConfirmPaymentByAuction(ctx context.Context, auctionID, userID string) (entities.Payment, error) {
	a, err := u.auctionRepo.GetByID(ctx, auctionID)
	if err != nil {
		return entities.Payment{}, err
	}
	if a.ID == "" {
		return entities.Payment{}, ErrAuctionNotFound
	}
	if a.OwnerID != userID {
		return entities.Payment{}, ErrNotPaymentOwner
	}

	p, err := u.repo.GetLatestByAuctionID(ctx, auctionID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}

	return u.approve(ctx, p.ID)
}

func (u *PaymentUseCase) UpdateShippingAddress(ctx context.Context, input UpdateShippingAddressInput) (entities.Payment, error) {
	if strings.TrimSpace(input.Address) == "" {
		return entities.Payment{}, ErrInvalidPaymentInput
	}

	p, err := u.getOwned(ctx, input.PaymentID, input.UserID)
	if err != nil {
		return entities.Payment{}, err
	}

	// The address form only opens after proof of payment exists.
	if p.SlipImage == "" {
		return entities.Payment{}, ErrSlipNotUploaded
	}

	name := input.RecipientName
	phone := input.RecipientPhone
	if name == "" || phone == "" {
		profile, err := u.profileRepo.GetByUserID(ctx, input.UserID)
		if err != nil {
			return entities.Payment{}, err
		}
		if name == "" {
			name = profile.Name
		}
		if phone == "" {
			phone = profile.Phone
		}
	}

	updated, err := u.repo.UpdateShippingAddress(ctx, p.ID, input.Address, name, phone, input.Note)
	if err != nil {
		return entities.Payment{}, err
	}
	if updated.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return updated, nil
}

// ConfirmDelivery is the buyer acknowledging receipt. It requires the
// shipment to be in the delivered state; the repository re-checks that
// condition at write time so a concurrent admin update cannot slip through.
func (u *PaymentUseCase) ConfirmDelivery(ctx context.Context, auctionID, userID string) (entities.Payment, error) {
	p, err := u.GetSlipByAuction(ctx, auctionID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.UserID != userID {
		return entities.Payment{}, ErrNotPaymentOwner
	}
	if p.ShippingStatus != entities.ShippingDelivered {
		return entities.Payment{}, ErrShipmentNotDelivered
	}

	updated, err := u.repo.ConfirmDelivery(ctx, p.ID, time.Now().UTC())
	if err != nil {
		return entities.Payment{}, err
	}
	if updated.ID == "" {
		return entities.Payment{}, ErrShipmentNotDelivered
	}

	logrus.WithFields(logrus.Fields{
		"payment_id": updated.ID,
		"auction_id": auctionID,
	}).Info("delivery confirmed by buyer")
	return updated, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentInput
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListPending(ctx context.Context) ([]entities.Payment, error) {
	return u.repo.ListByStatus(ctx, entities.PaymentStatusPending, entities.PaymentStatusUploaded)
}

func (u *PaymentUseCase) ListPaidBetween(ctx context.Context, start, end time.Time) ([]entities.Payment, error) {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return nil, ErrInvalidDateRange
	}
	return u.repo.ListPaidBetween(ctx, start, end)
}

func (u *PaymentUseCase) Approve(ctx context.Context, paymentID string) (entities.Payment, error) {
	return u.approve(ctx, paymentID)
}

func (u *PaymentUseCase) approve(ctx context.Context, paymentID string) (entities.Payment, error) {
	p, err := u.GetByID(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, err
	}

	updated, err := u.repo.Approve(ctx, p.ID, time.Now().UTC())
	if err != nil {
		return entities.Payment{}, err
	}
	if updated.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}

	logrus.WithField("payment_id", updated.ID).Info("payment approved")
	return updated, nil
}

func (u *PaymentUseCase) Reject(ctx context.Context, paymentID string) (entities.Payment, error) {
	p, err := u.GetByID(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, err
	}

	updated, err := u.repo.Reject(ctx, p.ID)
	if err != nil {
		return entities.Payment{}, err
	}
	if updated.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}

	logrus.WithField("payment_id", updated.ID).Info("payment rejected")
	return updated, nil
}

func (u *PaymentUseCase) UpdateShippingStatus(ctx context.Context, paymentID string, status entities.ShippingStatus, trackingNumber string) (entities.Payment, error) {
	if !entities.ValidShippingStatus(status) {
		return entities.Payment{}, ErrInvalidShippingStatus
	}
	// "completed" belongs to the buyer's confirmation alone.
	if status == entities.ShippingCompleted {
		return entities.Payment{}, ErrInvalidShippingStatus
	}

	p, err := u.GetByID(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if !entities.ShippingAdvances(p.ShippingStatus, status) {
		return entities.Payment{}, ErrShippingRegression
	}

	updated, err := u.repo.UpdateShipping(ctx, p.ID, status, trackingNumber)
	if err != nil {
		return entities.Payment{}, err
	}
	if updated.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}

	logrus.WithFields(logrus.Fields{
		"payment_id":      updated.ID,
		"shipping_status": status,
	}).Info("shipping status updated")
	return updated, nil
}

func (u *PaymentUseCase) getOwned(ctx context.Context, paymentID, userID string) (entities.Payment, error) {
	p, err := u.GetByID(ctx, paymentID)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.UserID != userID {
		return entities.Payment{}, ErrNotPaymentOwner
	}
	return p, nil
}
