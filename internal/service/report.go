package service

import (
	"context"

	"toolshed-backend/internal/domain"
	"toolshed-backend/internal/repository"
)

type reportService struct {
	toolRepo   repository.ToolRepository
	friendRepo repository.FriendRepository
	rentalRepo repository.RentalRepository
}

func NewReportService(
	toolRepo repository.ToolRepository,
	friendRepo repository.FriendRepository,
	rentalRepo repository.RentalRepository,
) ReportService {
	return &reportService{toolRepo: toolRepo, friendRepo: friendRepo, rentalRepo: rentalRepo}
}

// CalculateSummary is a pure read-side aggregation: tool count and total
// investment in one query, currently-out and friend counts in two more.
func (s *reportService) CalculateSummary(ctx context.Context, userID string) (*domain.Summary, error) {
	count, totalCost, err := s.toolRepo.CountAndSumCostByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	open, err := s.rentalRepo.CountOpenByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	friends, err := s.friendRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.Summary{
		ToolCount:   count,
		TotalCost:   totalCost,
		OpenRentals: open,
		FriendCount: friends,
	}, nil
}

func (s *reportService) RankFriends(ctx context.Context, userID string) ([]domain.FriendRankEntry, error) {
	return s.rentalRepo.RankFriendsByOwner(ctx, userID)
}
