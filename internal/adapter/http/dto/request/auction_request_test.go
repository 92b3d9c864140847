package request

import (
	"errors"
	"testing"
	"time"
)

func TestCreateAuctionRequest_ResolveExpiry(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	r := CreateAuctionRequest{ExpiresAt: "2026-03-02T12:00:00Z"}
	got, err := r.ResolveExpiry(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := now.Add(24 * time.Hour); !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}

	r2 := CreateAuctionRequest{DurationMinutes: 90}
	got, err = r2.ResolveExpiry(now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := now.Add(90 * time.Minute); !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}

	r3 := CreateAuctionRequest{ExpiresAt: "tomorrow"}
	if _, err = r3.ResolveExpiry(now); !errors.Is(err, ErrInvalidExpiry) {
		t.Fatalf("expected ErrInvalidExpiry, got %v", err)
	}

	r4 := CreateAuctionRequest{}
	if _, err = r4.ResolveExpiry(now); !errors.Is(err, ErrInvalidExpiry) {
		t.Fatalf("expected ErrInvalidExpiry, got %v", err)
	}
}
