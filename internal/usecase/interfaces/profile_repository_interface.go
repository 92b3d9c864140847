package interfaces

import (
	"context"

	"toyauction/internal/domain/entities"
)

// IProfileRepository is the read-only view of the account service's profile
// store consumed when synthesizing shipping and payout snapshots.

type IProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (entities.Profile, error)
}
