package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"toolshed-backend/internal/domain"
)

// Repositories own all persistence. GetByID returns (nil, nil) when no row
// matches: absent is a valid outcome, not an error. Update reports rows
// affected so callers can treat zero as not-found without a round trip.
// Every driver-level failure crosses these interfaces as a
// *domain.DataAccessError.

type UserRepository interface {
	Create(ctx context.Context, username, passwordHash string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}

type FriendRepository interface {
	Create(ctx context.Context, name, phone, socialSecurity, userID string) (*domain.Friend, error)
	GetByID(ctx context.Context, id string) (*domain.Friend, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Friend, error)
	Update(ctx context.Context, id, name, phone, socialSecurity string) (int64, error)
	Delete(ctx context.Context, id string) error
	CountByUser(ctx context.Context, userID string) (int, error)
}

type ToolRepository interface {
	Create(ctx context.Context, brand, name string, cost decimal.Decimal, userID string) (*domain.Tool, error)
	// GetByID and ListByUser left-join the open rental and its friend, so a
	// returned tool carries its derived current-rental state.
	GetByID(ctx context.Context, id string) (*domain.Tool, error)
	ListByUser(ctx context.Context, userID string, rentedOnly bool) ([]domain.Tool, error)
	ExistsByNameAndBrand(ctx context.Context, userID, name, brand string) (bool, error)
	Update(ctx context.Context, id, brand, name string, cost decimal.Decimal) (int64, error)
	Delete(ctx context.Context, id string) error
	CountAndSumCostByUser(ctx context.Context, userID string) (int, decimal.Decimal, error)
}

type RentalRepository interface {
	Create(ctx context.Context, toolID, friendID string, rentalTimestamp time.Time) (*domain.Rental, error)
	// Close sets the devolution timestamp on the tool's open rental. It is
	// the only mutation a rental row ever receives.
	Close(ctx context.Context, toolID string, devolutionTimestamp time.Time) (int64, error)
	HasOpenRentalForTool(ctx context.Context, toolID string) (bool, error)
	HasOpenRentalForFriend(ctx context.Context, friendID string) (bool, error)
	CountOpenByOwner(ctx context.Context, userID string) (int, error)
	ListByOwner(ctx context.Context, userID string) ([]domain.RentalHistoryEntry, error)
	RankFriendsByOwner(ctx context.Context, userID string) ([]domain.FriendRankEntry, error)
}
