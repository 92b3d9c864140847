package interfaces

import (
	"context"
	"time"
)

// IWinnerNotifier delivers the closure notification to an auction winner.
// Delivery is best-effort: the closure transition has already committed when
// this runs, so failures are logged by the caller and never propagated.

type IWinnerNotifier interface {
	NotifyWinner(ctx context.Context, contact, auctionName string, finalPrice float64) error
}

// IQRService turns a PromptPay payout target plus amount into a scannable QR
// image reference (a data URL in the local implementation).

type IQRService interface {
	PaymentQR(promptPayTarget string, amount float64) (string, error)
}

// ISlipStore persists uploaded proof-of-payment images and returns the public
// path stored on the payment record.

type ISlipStore interface {
	Save(ctx context.Context, filename string, data []byte) (string, error)
}

// ISessionStore is the TTL'd key-value side channel used by authentication
// (session liveness, one-time codes). Injected, never ambient.

type ISessionStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
