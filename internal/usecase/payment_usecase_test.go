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

type paymentMocks struct {
	repo     *mock_interfaces.MockIPaymentRepository
	auctions *mock_interfaces.MockIAuctionRepository
	profiles *mock_interfaces.MockIProfileRepository
	qr       *mock_interfaces.MockIQRService
	slips    *mock_interfaces.MockISlipStore
}

func newPaymentUseCaseForTest(t *testing.T) (*PaymentUseCase, paymentMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	m := paymentMocks{
		repo:     mock_interfaces.NewMockIPaymentRepository(ctrl),
		auctions: mock_interfaces.NewMockIAuctionRepository(ctrl),
		profiles: mock_interfaces.NewMockIProfileRepository(ctrl),
		qr:       mock_interfaces.NewMockIQRService(ctrl),
		slips:    mock_interfaces.NewMockISlipStore(ctrl),
	}
	uc := NewPaymentUseCase(m.repo, m.auctions, m.profiles, m.qr, m.slips, 15)
	return uc, m
}

func endedAuction(id string) entities.Auction {
	return entities.Auction{
		ID:              id,
		Name:            "vintage robot",
		Status:          entities.AuctionStatusEnded,
		FinalPrice:      300,
		OwnerID:         "seller-1",
		SellerPromptPay: "0812345678",
		HighestBidderID: "winner-1",
	}
}

func TestPaymentUseCase_GenerateQR(t *testing.T) {
	t.Run("auction not ended", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		a := endedAuction("a1")
		a.Status = entities.AuctionStatusActive
		m.auctions.EXPECT().GetByID(gomock.Any(), "a1").Return(a, nil)

		_, err := uc.GenerateQR(context.Background(), "a1", "winner-1")
		if !errors.Is(err, ErrAuctionNotEnded) {
			t.Fatalf("expected ErrAuctionNotEnded, got %v", err)
		}
	})

	t.Run("no winning bidder", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		a := endedAuction("a1")
		a.HighestBidderID = ""
		m.auctions.EXPECT().GetByID(gomock.Any(), "a1").Return(a, nil)

		_, err := uc.GenerateQR(context.Background(), "a1", "winner-1")
		if !errors.Is(err, ErrNoWinningBidder) {
			t.Fatalf("expected ErrNoWinningBidder, got %v", err)
		}
	})

	t.Run("caller is not the winner", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		m.auctions.EXPECT().GetByID(gomock.Any(), "a1").Return(endedAuction("a1"), nil)

		_, err := uc.GenerateQR(context.Background(), "a1", "someone-else")
		if !errors.Is(err, ErrNotWinningBidder) {
			t.Fatalf("expected ErrNotWinningBidder, got %v", err)
		}
	})

	t.Run("idempotent while unpaid record exists", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		existing := entities.Payment{ID: "p1", AuctionID: "a1", UserID: "winner-1", QRCode: "data:image/png;base64,abc"}

		m.auctions.EXPECT().GetByID(gomock.Any(), "a1").Return(endedAuction("a1"), nil)
		m.repo.EXPECT().GetUnpaidByAuctionAndUser(gomock.Any(), "a1", "winner-1").Return(existing, nil)

		got, err := uc.GenerateQR(context.Background(), "a1", "winner-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "p1" || got.QRCode != existing.QRCode {
			t.Fatalf("expected existing payment back, got %+v", got)
		}
	})

	t.Run("missing payout target", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		a := endedAuction("a1")
		a.SellerPromptPay = ""

		m.auctions.EXPECT().GetByID(gomock.Any(), "a1").Return(a, nil)
		m.repo.EXPECT().GetUnpaidByAuctionAndUser(gomock.Any(), "a1", "winner-1").Return(entities.Payment{}, nil)
		m.profiles.EXPECT().GetByUserID(gomock.Any(), "seller-1").Return(entities.Profile{}, nil)

		_, err := uc.GenerateQR(context.Background(), "a1", "winner-1")
		if !errors.Is(err, ErrMissingPayoutInfo) {
			t.Fatalf("expected ErrMissingPayoutInfo, got %v", err)
		}
	})

	t.Run("creates pending payment with ttl and shipping snapshot", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)

		m.auctions.EXPECT().GetByID(gomock.Any(), "a1").Return(endedAuction("a1"), nil)
		m.repo.EXPECT().GetUnpaidByAuctionAndUser(gomock.Any(), "a1", "winner-1").Return(entities.Payment{}, nil)
		m.qr.EXPECT().PaymentQR("0812345678", 300.0).Return("data:image/png;base64,qr", nil)
		m.profiles.EXPECT().GetByUserID(gomock.Any(), "winner-1").
			Return(entities.Profile{
				UserID: "winner-1",
				Name:   "Win Ner",
				Phone:  "0899999999",
				Addresses: []entities.Address{
					{Label: "home", FullAddress: "99 Toy Road", Name: "Win Ner", Phone: "0899999999", IsDefault: true},
				},
			}, nil)
		m.repo.EXPECT().CreateUnpaid(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.Status != entities.PaymentStatusPending || p.IsPaid {
					t.Fatalf("expected fresh pending payment, got %+v", p)
				}
				if p.ShippingStatus != entities.ShippingNotSent {
					t.Fatalf("expected not_sent shipping, got %s", p.ShippingStatus)
				}
				ttl := p.ExpiresAt.Sub(p.CreatedAt)
				if ttl != 15*time.Minute {
					t.Fatalf("expected 15m qr ttl, got %s", ttl)
				}
				if p.ShippingAddress != "99 Toy Road" || p.RecipientName != "Win Ner" {
					t.Fatalf("expected shipping snapshot from profile, got %+v", p)
				}
				return p, nil
			})
		m.auctions.EXPECT().SetPaymentQR(gomock.Any(), "a1", "data:image/png;base64,qr").Return(nil)

		got, err := uc.GenerateQR(context.Background(), "a1", "winner-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Amount != 300 {
			t.Fatalf("expected final price amount, got %v", got.Amount)
		}
	})

	t.Run("creation race resolved by refetch", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		winner := entities.Payment{ID: "p-other", AuctionID: "a1", UserID: "winner-1"}

		m.auctions.EXPECT().GetByID(gomock.Any(), "a1").Return(endedAuction("a1"), nil)
		gomock.InOrder(
			m.repo.EXPECT().GetUnpaidByAuctionAndUser(gomock.Any(), "a1", "winner-1").Return(entities.Payment{}, nil),
			m.repo.EXPECT().CreateUnpaid(gomock.Any(), gomock.Any()).Return(entities.Payment{}, interfaces.ErrDuplicateUnpaid),
			m.repo.EXPECT().GetUnpaidByAuctionAndUser(gomock.Any(), "a1", "winner-1").Return(winner, nil),
		)
		m.qr.EXPECT().PaymentQR("0812345678", 300.0).Return("data:image/png;base64,qr", nil)
		m.profiles.EXPECT().GetByUserID(gomock.Any(), "winner-1").Return(entities.Profile{}, nil)

		got, err := uc.GenerateQR(context.Background(), "a1", "winner-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "p-other" {
			t.Fatalf("expected concurrent record, got %+v", got)
		}
	})
}

func TestPaymentUseCase_UploadSlip(t *testing.T) {
	t.Run("rejects other user's payment", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "p1").
			Return(entities.Payment{ID: "p1", UserID: "winner-1"}, nil)

		_, err := uc.UploadSlip(context.Background(), "p1", "intruder", "slip.jpg", []byte{1})
		if !errors.Is(err, ErrNotPaymentOwner) {
			t.Fatalf("expected ErrNotPaymentOwner, got %v", err)
		}
	})

	t.Run("stores slip and marks uploaded", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		p := entities.Payment{ID: "p1", UserID: "winner-1", Status: entities.PaymentStatusPending}

		m.repo.EXPECT().GetByID(gomock.Any(), "p1").Return(p, nil)
		m.slips.EXPECT().Save(gomock.Any(), "slip.jpg", []byte{1, 2, 3}).Return("uploads/slips/1.jpg", nil)
		m.repo.EXPECT().SetSlip(gomock.Any(), "p1", "uploads/slips/1.jpg").
			Return(entities.Payment{ID: "p1", UserID: "winner-1", SlipImage: "uploads/slips/1.jpg", Status: entities.PaymentStatusUploaded}, nil)

		got, err := uc.UploadSlip(context.Background(), "p1", "winner-1", "slip.jpg", []byte{1, 2, 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.PaymentStatusUploaded {
			t.Fatalf("expected uploaded status, got %s", got.Status)
		}
	})
}

func TestPaymentUseCase_ApproveReject(t *testing.T) {
	t.Run("approve", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		now := time.Now().UTC()
		p := entities.Payment{ID: "p1", Status: entities.PaymentStatusUploaded}

		m.repo.EXPECT().GetByID(gomock.Any(), "p1").Return(p, nil)
		m.repo.EXPECT().Approve(gomock.Any(), "p1", gomock.Any()).
			Return(entities.Payment{ID: "p1", IsPaid: true, Status: entities.PaymentStatusApproved, PaymentConfirmedAt: &now}, nil)

		got, err := uc.Approve(context.Background(), "p1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.IsPaid || got.PaymentConfirmedAt == nil {
			t.Fatalf("expected paid payment, got %+v", got)
		}
	})

	t.Run("reject unknown payment", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Payment{}, nil)

		_, err := uc.Reject(context.Background(), "p1")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})
}

func TestPaymentUseCase_ConfirmPaymentByAuction(t *testing.T) {
	t.Run("only the seller may confirm", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		m.auctions.EXPECT().GetByID(gomock.Any(), "a1").Return(endedAuction("a1"), nil)

		_, err := uc.ConfirmPaymentByAuction(context.Background(), "a1", "winner-1")
		if !errors.Is(err, ErrNotPaymentOwner) {
			t.Fatalf("expected ErrNotPaymentOwner, got %v", err)
		}
	})

	t.Run("seller confirms latest payment", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		p := entities.Payment{ID: "p1", AuctionID: "a1", UserID: "winner-1"}

		m.auctions.EXPECT().GetByID(gomock.Any(), "a1").Return(endedAuction("a1"), nil)
		m.repo.EXPECT().GetLatestByAuctionID(gomock.Any(), "a1").Return(p, nil)
		m.repo.EXPECT().GetByID(gomock.Any(), "p1").Return(p, nil)
		m.repo.EXPECT().Approve(gomock.Any(), "p1", gomock.Any()).
			Return(entities.Payment{ID: "p1", IsPaid: true, Status: entities.PaymentStatusApproved}, nil)

		got, err := uc.ConfirmPaymentByAuction(context.Background(), "a1", "seller-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.IsPaid {
			t.Fatalf("expected paid payment, got %+v", got)
		}
	})
}

func TestPaymentUseCase_UpdateShippingStatus(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		uc, _ := newPaymentUseCaseForTest(t)
		_, err := uc.UpdateShippingStatus(context.Background(), "p1", "teleported", "")
		if !errors.Is(err, ErrInvalidShippingStatus) {
			t.Fatalf("expected ErrInvalidShippingStatus, got %v", err)
		}
	})

	t.Run("completed is reserved for the buyer", func(t *testing.T) {
		uc, _ := newPaymentUseCaseForTest(t)
		_, err := uc.UpdateShippingStatus(context.Background(), "p1", entities.ShippingCompleted, "")
		if !errors.Is(err, ErrInvalidShippingStatus) {
			t.Fatalf("expected ErrInvalidShippingStatus, got %v", err)
		}
	})

	t.Run("regression is refused", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "p1").
			Return(entities.Payment{ID: "p1", ShippingStatus: entities.ShippingDelivered}, nil)

		_, err := uc.UpdateShippingStatus(context.Background(), "p1", entities.ShippingShipped, "")
		if !errors.Is(err, ErrShippingRegression) {
			t.Fatalf("expected ErrShippingRegression, got %v", err)
		}
	})

	t.Run("re-asserting the same state updates tracking", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "p1").
			Return(entities.Payment{ID: "p1", ShippingStatus: entities.ShippingShipped}, nil)
		m.repo.EXPECT().UpdateShipping(gomock.Any(), "p1", entities.ShippingShipped, "TH123").
			Return(entities.Payment{ID: "p1", ShippingStatus: entities.ShippingShipped, TrackingNumber: "TH123"}, nil)

		got, err := uc.UpdateShippingStatus(context.Background(), "p1", entities.ShippingShipped, "TH123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.TrackingNumber != "TH123" {
			t.Fatalf("expected tracking number, got %+v", got)
		}
	})
}

func TestPaymentUseCase_UpdateShippingAddress(t *testing.T) {
	t.Run("requires uploaded slip", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "p1").
			Return(entities.Payment{ID: "p1", UserID: "winner-1"}, nil)

		_, err := uc.UpdateShippingAddress(context.Background(), UpdateShippingAddressInput{
			PaymentID: "p1", UserID: "winner-1", Address: "99 Toy Road",
		})
		if !errors.Is(err, ErrSlipNotUploaded) {
			t.Fatalf("expected ErrSlipNotUploaded, got %v", err)
		}
	})

	t.Run("fills recipient from profile", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		p := entities.Payment{ID: "p1", UserID: "winner-1", SlipImage: "uploads/slips/1.jpg"}

		m.repo.EXPECT().GetByID(gomock.Any(), "p1").Return(p, nil)
		m.profiles.EXPECT().GetByUserID(gomock.Any(), "winner-1").
			Return(entities.Profile{UserID: "winner-1", Name: "Win Ner", Phone: "0899999999"}, nil)
		m.repo.EXPECT().UpdateShippingAddress(gomock.Any(), "p1", "99 Toy Road", "Win Ner", "0899999999", "").
			Return(entities.Payment{ID: "p1", ShippingAddress: "99 Toy Road"}, nil)

		got, err := uc.UpdateShippingAddress(context.Background(), UpdateShippingAddressInput{
			PaymentID: "p1", UserID: "winner-1", Address: "99 Toy Road",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ShippingAddress != "99 Toy Road" {
			t.Fatalf("expected updated address, got %+v", got)
		}
	})
}

func TestPaymentUseCase_ConfirmDelivery(t *testing.T) {
	t.Run("only the buyer may confirm", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		m.repo.EXPECT().GetLatestByAuctionID(gomock.Any(), "a1").
			Return(entities.Payment{ID: "p1", UserID: "winner-1", ShippingStatus: entities.ShippingDelivered}, nil)

		_, err := uc.ConfirmDelivery(context.Background(), "a1", "intruder")
		if !errors.Is(err, ErrNotPaymentOwner) {
			t.Fatalf("expected ErrNotPaymentOwner, got %v", err)
		}
	})

	t.Run("shipment must be delivered first", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		m.repo.EXPECT().GetLatestByAuctionID(gomock.Any(), "a1").
			Return(entities.Payment{ID: "p1", UserID: "winner-1", ShippingStatus: entities.ShippingShipped}, nil)

		_, err := uc.ConfirmDelivery(context.Background(), "a1", "winner-1")
		if !errors.Is(err, ErrShipmentNotDelivered) {
			t.Fatalf("expected ErrShipmentNotDelivered, got %v", err)
		}
	})

	t.Run("concurrent state change is caught at write time", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		m.repo.EXPECT().GetLatestByAuctionID(gomock.Any(), "a1").
			Return(entities.Payment{ID: "p1", UserID: "winner-1", ShippingStatus: entities.ShippingDelivered}, nil)
		m.repo.EXPECT().ConfirmDelivery(gomock.Any(), "p1", gomock.Any()).
			Return(entities.Payment{}, nil)

		_, err := uc.ConfirmDelivery(context.Background(), "a1", "winner-1")
		if !errors.Is(err, ErrShipmentNotDelivered) {
			t.Fatalf("expected ErrShipmentNotDelivered, got %v", err)
		}
	})

	t.Run("buyer confirms delivery", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		now := time.Now().UTC()

		m.repo.EXPECT().GetLatestByAuctionID(gomock.Any(), "a1").
			Return(entities.Payment{ID: "p1", UserID: "winner-1", ShippingStatus: entities.ShippingDelivered}, nil)
		m.repo.EXPECT().ConfirmDelivery(gomock.Any(), "p1", gomock.Any()).
			Return(entities.Payment{ID: "p1", ShippingStatus: entities.ShippingCompleted, DeliveryConfirmedAt: &now}, nil)

		got, err := uc.ConfirmDelivery(context.Background(), "a1", "winner-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ShippingStatus != entities.ShippingCompleted || got.DeliveryConfirmedAt == nil {
			t.Fatalf("expected completed shipment, got %+v", got)
		}
	})
}

func TestPaymentUseCase_ListPaidBetween(t *testing.T) {
	t.Run("invalid range", func(t *testing.T) {
		uc, _ := newPaymentUseCaseForTest(t)
		start := time.Now()
		_, err := uc.ListPaidBetween(context.Background(), start, start.Add(-time.Hour))
		if !errors.Is(err, ErrInvalidDateRange) {
			t.Fatalf("expected ErrInvalidDateRange, got %v", err)
		}
	})

	t.Run("delegates to repository", func(t *testing.T) {
		uc, m := newPaymentUseCaseForTest(t)
		start := time.Now().Add(-24 * time.Hour)
		end := time.Now()
		m.repo.EXPECT().ListPaidBetween(gomock.Any(), start, end).
			Return([]entities.Payment{{ID: "p1", IsPaid: true}}, nil)

		got, err := uc.ListPaidBetween(context.Background(), start, end)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected 1 payment, got %d", len(got))
		}
	})
}
