package service

import (
	"context"
	"time"

	"toolshed-backend/internal/domain"
	"toolshed-backend/internal/repository"
)

type rentalService struct {
	rentalRepo repository.RentalRepository
	toolRepo   repository.ToolRepository
	friendRepo repository.FriendRepository
	now        func() time.Time
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	toolRepo repository.ToolRepository,
	friendRepo repository.FriendRepository,
) RentalService {
	return &rentalService{
		rentalRepo: rentalRepo,
		toolRepo:   toolRepo,
		friendRepo: friendRepo,
		now:        time.Now,
	}
}

// RentTool opens a loan. The tool row itself is never touched: rental state
// is derived entirely from the ledger. The existence check immediately
// precedes the insert; under a single active session that is sufficient,
// and the store's partial unique index covers the remaining race window.
func (s *rentalService) RentTool(ctx context.Context, userID, toolID, friendID string) (*domain.Rental, error) {
	tool, err := s.toolRepo.GetByID(ctx, toolID)
	if err != nil {
		return nil, err
	}
	if tool == nil || tool.UserID != userID {
		return nil, &domain.NotFoundError{Entity: "tool"}
	}

	friend, err := s.friendRepo.GetByID(ctx, friendID)
	if err != nil {
		return nil, err
	}
	if friend == nil || friend.UserID != userID {
		return nil, &domain.NotFoundError{Entity: "friend"}
	}

	rented, err := s.rentalRepo.HasOpenRentalForTool(ctx, tool.ID)
	if err != nil {
		return nil, err
	}
	if rented {
		return nil, domain.ErrAlreadyRented
	}

	rental, err := s.rentalRepo.Create(ctx, tool.ID, friend.ID, s.now())
	if err != nil {
		return nil, err
	}
	rental.Friend = friend
	return rental, nil
}

// ReturnTool closes the tool's open rental by setting its devolution
// timestamp. This is the only mutation a rental row ever receives.
func (s *rentalService) ReturnTool(ctx context.Context, userID, toolID string) error {
	tool, err := s.toolRepo.GetByID(ctx, toolID)
	if err != nil {
		return err
	}
	if tool == nil || tool.UserID != userID {
		return &domain.NotFoundError{Entity: "tool"}
	}
	if !tool.IsRented() {
		return domain.ErrNotRented
	}

	affected, err := s.rentalRepo.Close(ctx, tool.ID, s.now())
	if err != nil {
		return err
	}
	if affected == 0 {
		// The open rental disappeared between the read and the write.
		return domain.ErrNotRented
	}
	return nil
}

func (s *rentalService) ListRentals(ctx context.Context, userID string) ([]domain.RentalHistoryEntry, error) {
	return s.rentalRepo.ListByOwner(ctx, userID)
}
