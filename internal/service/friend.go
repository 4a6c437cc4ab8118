package service

import (
	"context"
	"strings"

	"toolshed-backend/internal/domain"
	"toolshed-backend/internal/repository"
)

type friendService struct {
	friendRepo repository.FriendRepository
	rentalRepo repository.RentalRepository
}

func NewFriendService(friendRepo repository.FriendRepository, rentalRepo repository.RentalRepository) FriendService {
	return &friendService{friendRepo: friendRepo, rentalRepo: rentalRepo}
}

func validateFriendFields(name, phone, socialSecurity string) error {
	if strings.TrimSpace(name) == "" {
		return &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if strings.TrimSpace(phone) == "" {
		return &domain.ValidationError{Field: "phone", Reason: "must not be empty"}
	}
	if strings.TrimSpace(socialSecurity) == "" {
		return &domain.ValidationError{Field: "social_security", Reason: "must not be empty"}
	}
	return nil
}

func (s *friendService) Register(ctx context.Context, userID, name, phone, socialSecurity string) (*domain.Friend, error) {
	if err := validateFriendFields(name, phone, socialSecurity); err != nil {
		return nil, err
	}
	return s.friendRepo.Create(ctx, name, phone, socialSecurity, userID)
}

func (s *friendService) Update(ctx context.Context, userID, friendID, name, phone, socialSecurity string) error {
	if err := validateFriendFields(name, phone, socialSecurity); err != nil {
		return err
	}

	friend, err := s.getOwned(ctx, userID, friendID)
	if err != nil {
		return err
	}

	affected, err := s.friendRepo.Update(ctx, friend.ID, name, phone, socialSecurity)
	if err != nil {
		return err
	}
	if affected == 0 {
		return &domain.NotFoundError{Entity: "friend"}
	}
	return nil
}

// Delete refuses to remove a friend who still holds a tool.
func (s *friendService) Delete(ctx context.Context, userID, friendID string) error {
	friend, err := s.getOwned(ctx, userID, friendID)
	if err != nil {
		return err
	}

	borrowing, err := s.rentalRepo.HasOpenRentalForFriend(ctx, friend.ID)
	if err != nil {
		return err
	}
	if borrowing {
		return &domain.InUseError{Entity: "friend", Dependent: "a tool is on loan to them"}
	}

	return s.friendRepo.Delete(ctx, friend.ID)
}

func (s *friendService) Get(ctx context.Context, userID, friendID string) (*domain.Friend, error) {
	return s.getOwned(ctx, userID, friendID)
}

func (s *friendService) List(ctx context.Context, userID string) ([]domain.Friend, error) {
	return s.friendRepo.ListByUser(ctx, userID)
}

func (s *friendService) getOwned(ctx context.Context, userID, friendID string) (*domain.Friend, error) {
	friend, err := s.friendRepo.GetByID(ctx, friendID)
	if err != nil {
		return nil, err
	}
	if friend == nil || friend.UserID != userID {
		return nil, &domain.NotFoundError{Entity: "friend"}
	}
	return friend, nil
}
