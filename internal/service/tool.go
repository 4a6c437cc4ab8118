package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"toolshed-backend/internal/domain"
	"toolshed-backend/internal/repository"
)

type toolService struct {
	toolRepo   repository.ToolRepository
	rentalRepo repository.RentalRepository
}

func NewToolService(toolRepo repository.ToolRepository, rentalRepo repository.RentalRepository) ToolService {
	return &toolService{toolRepo: toolRepo, rentalRepo: rentalRepo}
}

func validateToolFields(brand, name string, cost decimal.Decimal) error {
	if strings.TrimSpace(brand) == "" {
		return &domain.ValidationError{Field: "brand", Reason: "must not be empty"}
	}
	if strings.TrimSpace(name) == "" {
		return &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if cost.IsNegative() {
		return &domain.ValidationError{Field: "cost", Reason: "must not be negative"}
	}
	return nil
}

func (s *toolService) Register(ctx context.Context, userID, brand, name string, cost decimal.Decimal) (*domain.Tool, error) {
	if err := validateToolFields(brand, name, cost); err != nil {
		return nil, err
	}

	exists, err := s.toolRepo.ExistsByNameAndBrand(ctx, userID, name, brand)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &domain.DuplicateError{Field: "tool", Value: brand + " " + name}
	}

	return s.toolRepo.Create(ctx, brand, name, cost, userID)
}

func (s *toolService) Update(ctx context.Context, userID, toolID, brand, name string, cost decimal.Decimal) error {
	if err := validateToolFields(brand, name, cost); err != nil {
		return err
	}

	tool, err := s.getOwned(ctx, userID, toolID)
	if err != nil {
		return err
	}

	affected, err := s.toolRepo.Update(ctx, tool.ID, brand, name, cost)
	if err != nil {
		return err
	}
	if affected == 0 {
		return &domain.NotFoundError{Entity: "tool"}
	}
	return nil
}

// Delete refuses to remove a tool that is currently out. Closed rental
// history cascades away with the row at the store.
func (s *toolService) Delete(ctx context.Context, userID, toolID string) error {
	tool, err := s.getOwned(ctx, userID, toolID)
	if err != nil {
		return err
	}

	rented, err := s.rentalRepo.HasOpenRentalForTool(ctx, tool.ID)
	if err != nil {
		return err
	}
	if rented {
		return &domain.InUseError{Entity: "tool", Dependent: "an open rental exists for it"}
	}

	return s.toolRepo.Delete(ctx, tool.ID)
}

func (s *toolService) Get(ctx context.Context, userID, toolID string) (*domain.Tool, error) {
	return s.getOwned(ctx, userID, toolID)
}

func (s *toolService) List(ctx context.Context, userID string, rentedOnly bool) ([]domain.Tool, error) {
	return s.toolRepo.ListByUser(ctx, userID, rentedOnly)
}

// getOwned resolves a tool and scopes it to the calling user. A tool owned
// by someone else looks exactly like a missing one.
func (s *toolService) getOwned(ctx context.Context, userID, toolID string) (*domain.Tool, error) {
	tool, err := s.toolRepo.GetByID(ctx, toolID)
	if err != nil {
		return nil, err
	}
	if tool == nil || tool.UserID != userID {
		return nil, &domain.NotFoundError{Entity: "tool"}
	}
	return tool, nil
}
