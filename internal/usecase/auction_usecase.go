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
	ErrInvalidAuctionInput = errors.New("invalid auction input")
	ErrAuctionNotFound     = errors.New("auction not found")
	ErrBidTooLow           = errors.New("bid amount too low")
	ErrAuctionEnded        = errors.New("auction has ended")
	ErrAuctionAlreadyEnded = errors.New("auction already ended")
	ErrBidConflict         = errors.New("bid conflict, please retry")
	ErrCannotBidOwnAuction = errors.New("cannot bid on own auction")
)

const (
	defaultMinimumBidIncrement = 10

	// maxBidRetries bounds the read/validate/write loop when concurrent
	// bidders race on the same auction. Each retry revalidates against the
	// fresh price, so losing a race with a lower bid still fails correctly.
	maxBidRetries = 3
)

type CreateAuctionInput struct {
	Name                string
	Image               string
	StartingPrice       float64
	MinimumBidIncrement float64
	ExpiresAt           time.Time
	OwnerID             string
}

type PlaceBidInput struct {
	AuctionID string
	UserID    string
	Contact   string
	Amount    float64
}

// IAuctionUseCase covers the bidding lifecycle: creation, bid acceptance,
// expiry closure and the admin force-end paths.

type IAuctionUseCase interface {
	CreateAuction(ctx context.Context, input CreateAuctionInput) (entities.Auction, error)
	GetAuctionByID(ctx context.Context, id string) (entities.Auction, error)
	ListAuctions(ctx context.Context) ([]entities.Auction, error)
	GetBidHistory(ctx context.Context, auctionID string) ([]entities.Bid, error)
	// PlaceBid returns the refreshed auction together with the accepted bid.
	PlaceBid(ctx context.Context, input PlaceBidInput) (entities.Auction, entities.Bid, error)

	// CloseExpiredAuctions ends every active auction past its expiry and
	// notifies winners. Returns the number of auctions this call closed.
	CloseExpiredAuctions(ctx context.Context, now time.Time) (int, error)

	ForceEndAuction(ctx context.Context, id string) (entities.Auction, error)
	ForceEndAllActive(ctx context.Context) (int, error)
}

type AuctionUseCase struct {
	repo        interfaces.IAuctionRepository
	bidRepo     interfaces.IBidRepository
	profileRepo interfaces.IProfileRepository
	notifier    interfaces.IWinnerNotifier
}

var _ IAuctionUseCase = (*AuctionUseCase)(nil)

func NewAuctionUseCase(
	repo interfaces.IAuctionRepository,
	bidRepo interfaces.IBidRepository,
	profileRepo interfaces.IProfileRepository,
	notifier interfaces.IWinnerNotifier,
) *AuctionUseCase {
	return &AuctionUseCase{repo: repo, bidRepo: bidRepo, profileRepo: profileRepo, notifier: notifier}
}

func (u *AuctionUseCase) CreateAuction(ctx context.Context, input CreateAuctionInput) (entities.Auction, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" || input.OwnerID == "" {
		return entities.Auction{}, ErrInvalidAuctionInput
	}
	if input.StartingPrice <= 0 {
		return entities.Auction{}, ErrInvalidAuctionInput
	}
	now := time.Now().UTC()
	if !input.ExpiresAt.After(now) {
		return entities.Auction{}, ErrInvalidAuctionInput
	}
	if input.MinimumBidIncrement <= 0 {
		input.MinimumBidIncrement = defaultMinimumBidIncrement
	}

	// Snapshot the seller's payout target now; later profile edits must not
	// change where an already-listed auction's payment goes.
	sellerPromptPay := ""
	if u.profileRepo != nil {
		profile, err := u.profileRepo.GetByUserID(ctx, input.OwnerID)
		if err != nil {
			return entities.Auction{}, err
		}
		sellerPromptPay = profile.PayoutTarget()
	}

	a := entities.Auction{
		ID:                  uuid.NewString(),
		Name:                input.Name,
		Image:               input.Image,
		StartingPrice:       input.StartingPrice,
		CurrentPrice:        input.StartingPrice,
		MinimumBidIncrement: input.MinimumBidIncrement,
		ExpiresAt:           input.ExpiresAt.UTC(),
		Status:              entities.AuctionStatusActive,
		OwnerID:             input.OwnerID,
		SellerPromptPay:     sellerPromptPay,
		Version:             1,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	created, err := u.repo.Create(ctx, a)
	if err != nil {
		return entities.Auction{}, err
	}
	logrus.WithFields(logrus.Fields{
		"auction_id": created.ID,
		"owner_id":   created.OwnerID,
		"expires_at": created.ExpiresAt,
	}).Info("auction created")
	return created, nil
}

func (u *AuctionUseCase) GetAuctionByID(ctx context.Context, id string) (entities.Auction, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Auction{}, ErrInvalidAuctionInput
	}

	a, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Auction{}, err
	}
	if a.ID == "" {
		return entities.Auction{}, ErrAuctionNotFound
	}
	return a, nil
}

func (u *AuctionUseCase) ListAuctions(ctx context.Context) ([]entities.Auction, error) {
	return u.repo.List(ctx)
}

func (u *AuctionUseCase) GetBidHistory(ctx context.Context, auctionID string) ([]entities.Bid, error) {
	if _, err := u.GetAuctionByID(ctx, auctionID); err != nil {
		return nil, err
	}
	return u.bidRepo.ListByAuctionID(ctx, auctionID)
}

// PlaceBid accepts a bid through a read-validate-write loop. The write is a
// transaction conditioned on the version the read observed, so a concurrent
// winner forces a re-read and full revalidation against the new price. Bids
// are accepted on any auction still marked active, even past its nominal
// expiry, until the sweep flips the status.
func (u *AuctionUseCase) PlaceBid(ctx context.Context, input PlaceBidInput) (entities.Auction, entities.Bid, error) {
	if input.AuctionID == "" || input.UserID == "" {
		return entities.Auction{}, entities.Bid{}, ErrInvalidAuctionInput
	}
	if input.Amount <= 0 {
		return entities.Auction{}, entities.Bid{}, ErrBidTooLow
	}

	for attempt := 0; attempt < maxBidRetries; attempt++ {
		a, err := u.repo.GetByID(ctx, input.AuctionID)
		if err != nil {
			return entities.Auction{}, entities.Bid{}, err
		}
		if a.ID == "" {
			return entities.Auction{}, entities.Bid{}, ErrAuctionNotFound
		}
		if a.Ended() {
			return entities.Auction{}, entities.Bid{}, ErrAuctionEnded
		}
		if a.OwnerID == input.UserID {
			return entities.Auction{}, entities.Bid{}, ErrCannotBidOwnAuction
		}
		if input.Amount < a.CurrentPrice+a.MinimumBidIncrement {
			return entities.Auction{}, entities.Bid{}, ErrBidTooLow
		}

		now := time.Now().UTC()
		b := entities.Bid{
			ID:        uuid.NewString(),
			AuctionID: a.ID,
			UserID:    input.UserID,
			Amount:    input.Amount,
			CreatedAt: now,
		}

		a.CurrentPrice = input.Amount
		a.HighestBidderID = input.UserID
		a.HighestBidderContact = input.Contact
		a.BidIDs = append(a.BidIDs, b.ID)

		updated, err := u.repo.ApplyBid(ctx, a, b)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			logrus.WithFields(logrus.Fields{
				"auction_id": a.ID,
				"attempt":    attempt + 1,
			}).Warn("bid lost version race, retrying")
			continue
		}
		if err != nil {
			return entities.Auction{}, entities.Bid{}, err
		}

		logrus.WithFields(logrus.Fields{
			"auction_id": updated.ID,
			"bid_id":     b.ID,
			"amount":     b.Amount,
		}).Info("bid accepted")
		return updated, b, nil
	}

	return entities.Auction{}, entities.Bid{}, ErrBidConflict
}

func (u *AuctionUseCase) CloseExpiredAuctions(ctx context.Context, now time.Time) (int, error) {
	expired, err := u.repo.ListExpiredActive(ctx, now)
	if err != nil {
		return 0, err
	}

	closed := 0
	for _, a := range expired {
		// The index query compares timestamp strings; re-check with real
		// time arithmetic before closing.
		if a.ExpiresAt.After(now) {
			continue
		}
		ended, err := u.closeOne(ctx, a, now)
		if err != nil {
			logrus.WithError(err).WithField("auction_id", a.ID).Error("failed to close expired auction")
			continue
		}
		if ended.ID == "" {
			// Someone else closed it between the query and the write.
			continue
		}
		closed++
	}

	if closed > 0 {
		logrus.WithField("count", closed).Info("expired auctions closed")
	}
	return closed, nil
}

// closeOne performs the conditional close and the best-effort winner
// notification. A zero-value return with nil error means the auction was
// already ended by a concurrent closer.
func (u *AuctionUseCase) closeOne(ctx context.Context, a entities.Auction, now time.Time) (entities.Auction, error) {
	ended, err := u.repo.Close(ctx, a.ID, a.CurrentPrice, now)
	if err != nil {
		return entities.Auction{}, err
	}
	if ended.ID == "" {
		return entities.Auction{}, nil
	}

	if ended.HighestBidderID != "" {
		u.notifyWinner(ctx, ended)
	}
	return ended, nil
}

func (u *AuctionUseCase) notifyWinner(ctx context.Context, a entities.Auction) {
	if u.notifier == nil {
		return
	}

	contact := a.HighestBidderContact
	if contact == "" && u.profileRepo != nil {
		profile, err := u.profileRepo.GetByUserID(ctx, a.HighestBidderID)
		if err != nil {
			logrus.WithError(err).WithField("auction_id", a.ID).Warn("winner profile lookup failed")
		} else {
			contact = profile.Email
		}
	}
	if contact == "" {
		logrus.WithField("auction_id", a.ID).Warn("winner has no contact, skipping notification")
		return
	}

	// The close has already committed; notification failures are logged,
	// never propagated.
	if err := u.notifier.NotifyWinner(ctx, contact, a.Name, a.FinalPrice); err != nil {
		logrus.WithError(err).WithField("auction_id", a.ID).Error("winner notification failed")
	}
}

func (u *AuctionUseCase) ForceEndAuction(ctx context.Context, id string) (entities.Auction, error) {
	a, err := u.GetAuctionByID(ctx, id)
	if err != nil {
		return entities.Auction{}, err
	}
	if a.Ended() {
		return entities.Auction{}, ErrAuctionAlreadyEnded
	}

	ended, err := u.closeOne(ctx, a, time.Now().UTC())
	if err != nil {
		return entities.Auction{}, err
	}
	if ended.ID == "" {
		return entities.Auction{}, ErrAuctionAlreadyEnded
	}

	logrus.WithField("auction_id", ended.ID).Info("auction force-ended")
	return ended, nil
}

func (u *AuctionUseCase) ForceEndAllActive(ctx context.Context) (int, error) {
	active, err := u.repo.ListActive(ctx)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	closed := 0
	for _, a := range active {
		ended, err := u.closeOne(ctx, a, now)
		if err != nil {
			logrus.WithError(err).WithField("auction_id", a.ID).Error("failed to force-end auction")
			continue
		}
		if ended.ID != "" {
			closed++
		}
	}

	logrus.WithField("count", closed).Info("all active auctions force-ended")
	return closed, nil
}
