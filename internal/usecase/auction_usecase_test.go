package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"toyauction/internal/domain/entities"
	"toyauction/internal/usecase/interfaces"
	mock_interfaces "toyauction/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func activeAuction(id string) entities.Auction {
	return entities.Auction{
		ID:                  id,
		Name:                "vintage robot",
		StartingPrice:       100,
		CurrentPrice:        100,
		MinimumBidIncrement: 10,
		ExpiresAt:           time.Now().UTC().Add(time.Hour),
		Status:              entities.AuctionStatusActive,
		OwnerID:             "seller-1",
		Version:             1,
	}
}

func TestAuctionUseCase_CreateAuction_Validations(t *testing.T) {
	uc := NewAuctionUseCase(nil, nil, nil, nil)
	future := time.Now().Add(time.Hour)

	t.Run("empty name", func(t *testing.T) {
		_, err := uc.CreateAuction(context.Background(), CreateAuctionInput{
			Name: " ", StartingPrice: 100, ExpiresAt: future, OwnerID: "u1",
		})
		if !errors.Is(err, ErrInvalidAuctionInput) {
			t.Fatalf("expected ErrInvalidAuctionInput, got %v", err)
		}
	})

	t.Run("non-positive starting price", func(t *testing.T) {
		_, err := uc.CreateAuction(context.Background(), CreateAuctionInput{
			Name: "robot", StartingPrice: 0, ExpiresAt: future, OwnerID: "u1",
		})
		if !errors.Is(err, ErrInvalidAuctionInput) {
			t.Fatalf("expected ErrInvalidAuctionInput, got %v", err)
		}
	})

	t.Run("expiry in the past", func(t *testing.T) {
		_, err := uc.CreateAuction(context.Background(), CreateAuctionInput{
			Name: "robot", StartingPrice: 100, ExpiresAt: time.Now().Add(-time.Minute), OwnerID: "u1",
		})
		if !errors.Is(err, ErrInvalidAuctionInput) {
			t.Fatalf("expected ErrInvalidAuctionInput, got %v", err)
		}
	})
}

func TestAuctionUseCase_CreateAuction_SnapshotsSellerPayout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
	profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
	uc := NewAuctionUseCase(repo, nil, profiles, nil)

	profiles.EXPECT().GetByUserID(gomock.Any(), "seller-1").
		Return(entities.Profile{UserID: "seller-1", Phone: "0812345678", PromptPayID: "1234567890123"}, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a entities.Auction) (entities.Auction, error) {
			if a.SellerPromptPay != "1234567890123" {
				t.Fatalf("expected promptpay snapshot, got %q", a.SellerPromptPay)
			}
			if a.CurrentPrice != a.StartingPrice {
				t.Fatalf("current price must start at starting price")
			}
			if a.Version != 1 {
				t.Fatalf("expected initial version 1, got %d", a.Version)
			}
			return a, nil
		})

	created, err := uc.CreateAuction(context.Background(), CreateAuctionInput{
		Name:          "robot",
		StartingPrice: 100,
		ExpiresAt:     time.Now().Add(time.Hour),
		OwnerID:       "seller-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.MinimumBidIncrement != defaultMinimumBidIncrement {
		t.Fatalf("expected default increment, got %v", created.MinimumBidIncrement)
	}
}

func TestAuctionUseCase_PlaceBid(t *testing.T) {
	t.Run("auction not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
		uc := NewAuctionUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "a1").Return(entities.Auction{}, nil)

		_, _, err := uc.PlaceBid(context.Background(), PlaceBidInput{AuctionID: "a1", UserID: "u1", Amount: 200})
		if !errors.Is(err, ErrAuctionNotFound) {
			t.Fatalf("expected ErrAuctionNotFound, got %v", err)
		}
	})

	t.Run("auction ended", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
		uc := NewAuctionUseCase(repo, nil, nil, nil)

		a := activeAuction("a1")
		a.Status = entities.AuctionStatusEnded
		repo.EXPECT().GetByID(gomock.Any(), "a1").Return(a, nil)

		_, _, err := uc.PlaceBid(context.Background(), PlaceBidInput{AuctionID: "a1", UserID: "u1", Amount: 200})
		if !errors.Is(err, ErrAuctionEnded) {
			t.Fatalf("expected ErrAuctionEnded, got %v", err)
		}
	})

	t.Run("owner cannot bid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
		uc := NewAuctionUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "a1").Return(activeAuction("a1"), nil)

		_, _, err := uc.PlaceBid(context.Background(), PlaceBidInput{AuctionID: "a1", UserID: "seller-1", Amount: 200})
		if !errors.Is(err, ErrCannotBidOwnAuction) {
			t.Fatalf("expected ErrCannotBidOwnAuction, got %v", err)
		}
	})

	t.Run("opening bid below starting price plus increment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
		uc := NewAuctionUseCase(repo, nil, nil, nil)

		// 100 start, increment 10: 105 is not enough even with no bids yet.
		repo.EXPECT().GetByID(gomock.Any(), "a1").Return(activeAuction("a1"), nil)

		_, _, err := uc.PlaceBid(context.Background(), PlaceBidInput{AuctionID: "a1", UserID: "u1", Amount: 105})
		if !errors.Is(err, ErrBidTooLow) {
			t.Fatalf("expected ErrBidTooLow, got %v", err)
		}
	})

	t.Run("opening bid at exactly starting price plus increment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
		uc := NewAuctionUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "a1").Return(activeAuction("a1"), nil)
		repo.EXPECT().ApplyBid(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a entities.Auction, b entities.Bid) (entities.Auction, error) {
				a.Version++
				return a, nil
			})

		updated, bid, err := uc.PlaceBid(context.Background(), PlaceBidInput{AuctionID: "a1", UserID: "u1", Amount: 110})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.CurrentPrice != 110 || bid.Amount != 110 {
			t.Fatalf("expected 110 accepted, got auction %+v bid %+v", updated, bid)
		}
	})

	t.Run("later bid below current plus increment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
		uc := NewAuctionUseCase(repo, nil, nil, nil)

		a := activeAuction("a1")
		a.CurrentPrice = 150
		a.HighestBidderID = "u2"
		repo.EXPECT().GetByID(gomock.Any(), "a1").Return(a, nil)

		_, _, err := uc.PlaceBid(context.Background(), PlaceBidInput{AuctionID: "a1", UserID: "u1", Amount: 155})
		if !errors.Is(err, ErrBidTooLow) {
			t.Fatalf("expected ErrBidTooLow, got %v", err)
		}
	})

	t.Run("accepted bid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
		uc := NewAuctionUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "a1").Return(activeAuction("a1"), nil)
		repo.EXPECT().ApplyBid(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a entities.Auction, b entities.Bid) (entities.Auction, error) {
				if a.CurrentPrice != 200 || a.HighestBidderID != "u1" {
					t.Fatalf("auction not updated before write: %+v", a)
				}
				if b.AuctionID != "a1" || b.Amount != 200 {
					t.Fatalf("unexpected bid row: %+v", b)
				}
				if len(a.BidIDs) != 1 || a.BidIDs[0] != b.ID {
					t.Fatalf("bid id not appended to auction")
				}
				a.Version++
				return a, nil
			})

		updated, bid, err := uc.PlaceBid(context.Background(), PlaceBidInput{
			AuctionID: "a1", UserID: "u1", Contact: "u1@example.com", Amount: 200,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.HighestBidderContact != "u1@example.com" {
			t.Fatalf("expected contact snapshot, got %q", updated.HighestBidderContact)
		}
		if bid.ID == "" || bid.Amount != 200 || bid.AuctionID != "a1" {
			t.Fatalf("expected accepted bid back, got %+v", bid)
		}
	})

	t.Run("version conflict retries against fresh price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
		uc := NewAuctionUseCase(repo, nil, nil, nil)

		first := activeAuction("a1")
		refreshed := activeAuction("a1")
		refreshed.CurrentPrice = 250
		refreshed.HighestBidderID = "u2"
		refreshed.Version = 2

		gomock.InOrder(
			repo.EXPECT().GetByID(gomock.Any(), "a1").Return(first, nil),
			repo.EXPECT().ApplyBid(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(entities.Auction{}, interfaces.ErrVersionConflict),
			repo.EXPECT().GetByID(gomock.Any(), "a1").Return(refreshed, nil),
		)

		// 200 beat the first read but not the refreshed price.
		_, _, err := uc.PlaceBid(context.Background(), PlaceBidInput{AuctionID: "a1", UserID: "u1", Amount: 200})
		if !errors.Is(err, ErrBidTooLow) {
			t.Fatalf("expected ErrBidTooLow after refresh, got %v", err)
		}
	})

	t.Run("retries exhausted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
		uc := NewAuctionUseCase(repo, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "a1").Return(activeAuction("a1"), nil).Times(maxBidRetries)
		repo.EXPECT().ApplyBid(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Auction{}, interfaces.ErrVersionConflict).Times(maxBidRetries)

		_, _, err := uc.PlaceBid(context.Background(), PlaceBidInput{AuctionID: "a1", UserID: "u1", Amount: 200})
		if !errors.Is(err, ErrBidConflict) {
			t.Fatalf("expected ErrBidConflict, got %v", err)
		}
	})
}

func TestAuctionUseCase_CloseExpiredAuctions(t *testing.T) {
	now := time.Now().UTC()

	t.Run("closes and notifies winner via contact snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
		notifier := mock_interfaces.NewMockIWinnerNotifier(ctrl)
		uc := NewAuctionUseCase(repo, nil, nil, notifier)

		a := activeAuction("a1")
		a.ExpiresAt = now.Add(-time.Minute)
		a.CurrentPrice = 300
		a.HighestBidderID = "u1"
		a.HighestBidderContact = "u1@example.com"

		ended := a
		ended.Status = entities.AuctionStatusEnded
		ended.FinalPrice = 300

		repo.EXPECT().ListExpiredActive(gomock.Any(), now).Return([]entities.Auction{a}, nil)
		repo.EXPECT().Close(gomock.Any(), "a1", 300.0, now).Return(ended, nil)
		notifier.EXPECT().NotifyWinner(gomock.Any(), "u1@example.com", "vintage robot", 300.0).Return(nil)

		closed, err := uc.CloseExpiredAuctions(context.Background(), now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if closed != 1 {
			t.Fatalf("expected 1 closed, got %d", closed)
		}
	})

	t.Run("already closed by a concurrent sweep is skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
		uc := NewAuctionUseCase(repo, nil, nil, nil)

		a := activeAuction("a1")
		a.ExpiresAt = now.Add(-time.Minute)
		repo.EXPECT().ListExpiredActive(gomock.Any(), now).Return([]entities.Auction{a}, nil)
		repo.EXPECT().Close(gomock.Any(), "a1", 100.0, now).Return(entities.Auction{}, nil)

		closed, err := uc.CloseExpiredAuctions(context.Background(), now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if closed != 0 {
			t.Fatalf("expected 0 closed, got %d", closed)
		}
	})

	t.Run("not yet expired item from the index is left open", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
		uc := NewAuctionUseCase(repo, nil, nil, nil)

		a := activeAuction("a1")
		a.ExpiresAt = now.Add(time.Second)
		repo.EXPECT().ListExpiredActive(gomock.Any(), now).Return([]entities.Auction{a}, nil)

		closed, err := uc.CloseExpiredAuctions(context.Background(), now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if closed != 0 {
			t.Fatalf("expected 0 closed, got %d", closed)
		}
	})

	t.Run("notifier failure does not fail the sweep", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
		notifier := mock_interfaces.NewMockIWinnerNotifier(ctrl)
		uc := NewAuctionUseCase(repo, nil, nil, notifier)

		a := activeAuction("a1")
		a.ExpiresAt = now.Add(-time.Minute)
		a.HighestBidderID = "u1"
		a.HighestBidderContact = "u1@example.com"
		ended := a
		ended.Status = entities.AuctionStatusEnded
		ended.FinalPrice = 100

		repo.EXPECT().ListExpiredActive(gomock.Any(), now).Return([]entities.Auction{a}, nil)
		repo.EXPECT().Close(gomock.Any(), "a1", 100.0, now).Return(ended, nil)
		notifier.EXPECT().NotifyWinner(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("broker down"))

		closed, err := uc.CloseExpiredAuctions(context.Background(), now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if closed != 1 {
			t.Fatalf("expected 1 closed, got %d", closed)
		}
	})

	t.Run("missing contact snapshot falls back to profile email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
		profiles := mock_interfaces.NewMockIProfileRepository(ctrl)
		notifier := mock_interfaces.NewMockIWinnerNotifier(ctrl)
		uc := NewAuctionUseCase(repo, nil, profiles, notifier)

		a := activeAuction("a1")
		a.ExpiresAt = now.Add(-time.Minute)
		a.HighestBidderID = "u1"
		ended := a
		ended.Status = entities.AuctionStatusEnded
		ended.FinalPrice = 100

		repo.EXPECT().ListExpiredActive(gomock.Any(), now).Return([]entities.Auction{a}, nil)
		repo.EXPECT().Close(gomock.Any(), "a1", 100.0, now).Return(ended, nil)
		profiles.EXPECT().GetByUserID(gomock.Any(), "u1").
			Return(entities.Profile{UserID: "u1", Email: "u1@mail.test"}, nil)
		notifier.EXPECT().NotifyWinner(gomock.Any(), "u1@mail.test", "vintage robot", 100.0).Return(nil)

		if _, err := uc.CloseExpiredAuctions(context.Background(), now); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestAuctionUseCase_ForceEnd(t *testing.T) {
	t.Run("already ended", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
		uc := NewAuctionUseCase(repo, nil, nil, nil)

		a := activeAuction("a1")
		a.Status = entities.AuctionStatusEnded
		repo.EXPECT().GetByID(gomock.Any(), "a1").Return(a, nil)

		_, err := uc.ForceEndAuction(context.Background(), "a1")
		if !errors.Is(err, ErrAuctionAlreadyEnded) {
			t.Fatalf("expected ErrAuctionAlreadyEnded, got %v", err)
		}
	})

	t.Run("force end single auction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
		uc := NewAuctionUseCase(repo, nil, nil, nil)

		a := activeAuction("a1")
		ended := a
		ended.Status = entities.AuctionStatusEnded
		ended.FinalPrice = 100

		repo.EXPECT().GetByID(gomock.Any(), "a1").Return(a, nil)
		repo.EXPECT().Close(gomock.Any(), "a1", 100.0, gomock.Any()).Return(ended, nil)

		got, err := uc.ForceEndAuction(context.Background(), "a1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Ended() {
			t.Fatalf("expected ended auction, got %+v", got)
		}
	})

	t.Run("force end all active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIAuctionRepository(ctrl)
		uc := NewAuctionUseCase(repo, nil, nil, nil)

		a1 := activeAuction("a1")
		a2 := activeAuction("a2")
		ended1 := a1
		ended1.Status = entities.AuctionStatusEnded

		repo.EXPECT().ListActive(gomock.Any()).Return([]entities.Auction{a1, a2}, nil)
		repo.EXPECT().Close(gomock.Any(), "a1", 100.0, gomock.Any()).Return(ended1, nil)
		// a2 raced with the sweep and was already ended.
		repo.EXPECT().Close(gomock.Any(), "a2", 100.0, gomock.Any()).Return(entities.Auction{}, nil)

		closed, err := uc.ForceEndAllActive(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if closed != 1 {
			t.Fatalf("expected 1 closed, got %d", closed)
		}
	})
}
