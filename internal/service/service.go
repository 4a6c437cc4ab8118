package service

import (
	"context"

	"github.com/shopspring/decimal"

	"toolshed-backend/internal/domain"
)

// Use cases own validation and orchestration. Business-rule violations come
// back as the typed errors in the domain package; DataAccessError from the
// repositories passes through unchanged.

type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, string, error)
	Login(ctx context.Context, username, password string) (*domain.User, string, error)
}

type ToolService interface {
	Register(ctx context.Context, userID, brand, name string, cost decimal.Decimal) (*domain.Tool, error)
	Update(ctx context.Context, userID, toolID, brand, name string, cost decimal.Decimal) error
	Delete(ctx context.Context, userID, toolID string) error
	Get(ctx context.Context, userID, toolID string) (*domain.Tool, error)
	List(ctx context.Context, userID string, rentedOnly bool) ([]domain.Tool, error)
}

type FriendService interface {
	Register(ctx context.Context, userID, name, phone, socialSecurity string) (*domain.Friend, error)
	Update(ctx context.Context, userID, friendID, name, phone, socialSecurity string) error
	Delete(ctx context.Context, userID, friendID string) error
	Get(ctx context.Context, userID, friendID string) (*domain.Friend, error)
	List(ctx context.Context, userID string) ([]domain.Friend, error)
}

type RentalService interface {
	RentTool(ctx context.Context, userID, toolID, friendID string) (*domain.Rental, error)
	ReturnTool(ctx context.Context, userID, toolID string) error
	ListRentals(ctx context.Context, userID string) ([]domain.RentalHistoryEntry, error)
}

type ReportService interface {
	CalculateSummary(ctx context.Context, userID string) (*domain.Summary, error)
	RankFriends(ctx context.Context, userID string) ([]domain.FriendRankEntry, error)
}

type EmailService interface {
	SendLoanReminder(ctx context.Context, to, username string, entries []domain.RentalHistoryEntry) error
}
