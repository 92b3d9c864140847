package request

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidExpiry = errors.New("invalid auction expiry")

type CreateAuctionRequest struct {
	Name                string  `json:"name" binding:"required"`
	Image               string  `json:"image"`
	StartingPrice       float64 `json:"starting_price" binding:"required,gt=0"`
	MinimumBidIncrement float64 `json:"minimum_bid_increment"`

	// Exactly one of expires_at (absolute, RFC3339) or duration_minutes.
	ExpiresAt       string `json:"expires_at"`
	DurationMinutes int    `json:"duration_minutes"`
}

// ResolveExpiry turns the two accepted expiry forms into one absolute time.
func (r CreateAuctionRequest) ResolveExpiry(now time.Time) (time.Time, error) {
	if v := strings.TrimSpace(r.ExpiresAt); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return time.Time{}, ErrInvalidExpiry
		}
		return t, nil
	}
	if r.DurationMinutes > 0 {
		return now.Add(time.Duration(r.DurationMinutes) * time.Minute), nil
	}
	return time.Time{}, ErrInvalidExpiry
}

type PlaceBidRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// ForceEndAllRequest guards the bulk force-end behind an explicit
// confirmation; binding "required" rejects both a missing and a false value.
type ForceEndAllRequest struct {
	Confirm bool `json:"confirm" binding:"required"`
}
