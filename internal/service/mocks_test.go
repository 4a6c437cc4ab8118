package service_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"toolshed-backend/internal/domain"
	"toolshed-backend/internal/security"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	args := m.Called(ctx, username, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

type MockFriendRepository struct {
	mock.Mock
}

func (m *MockFriendRepository) Create(ctx context.Context, name, phone, socialSecurity, userID string) (*domain.Friend, error) {
	args := m.Called(ctx, name, phone, socialSecurity, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Friend), args.Error(1)
}

func (m *MockFriendRepository) GetByID(ctx context.Context, id string) (*domain.Friend, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Friend), args.Error(1)
}

func (m *MockFriendRepository) ListByUser(ctx context.Context, userID string) ([]domain.Friend, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Friend), args.Error(1)
}

func (m *MockFriendRepository) Update(ctx context.Context, id, name, phone, socialSecurity string) (int64, error) {
	args := m.Called(ctx, id, name, phone, socialSecurity)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFriendRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFriendRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

type MockToolRepository struct {
	mock.Mock
}

func (m *MockToolRepository) Create(ctx context.Context, brand, name string, cost decimal.Decimal, userID string) (*domain.Tool, error) {
	args := m.Called(ctx, brand, name, cost, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}

func (m *MockToolRepository) GetByID(ctx context.Context, id string) (*domain.Tool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tool), args.Error(1)
}

func (m *MockToolRepository) ListByUser(ctx context.Context, userID string, rentedOnly bool) ([]domain.Tool, error) {
	args := m.Called(ctx, userID, rentedOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tool), args.Error(1)
}

func (m *MockToolRepository) ExistsByNameAndBrand(ctx context.Context, userID, name, brand string) (bool, error) {
	args := m.Called(ctx, userID, name, brand)
	return args.Bool(0), args.Error(1)
}

func (m *MockToolRepository) Update(ctx context.Context, id, brand, name string, cost decimal.Decimal) (int64, error) {
	args := m.Called(ctx, id, brand, name, cost)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockToolRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockToolRepository) CountAndSumCostByUser(ctx context.Context, userID string) (int, decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Get(1).(decimal.Decimal), args.Error(2)
}

type MockRentalRepository struct {
	mock.Mock
}

func (m *MockRentalRepository) Create(ctx context.Context, toolID, friendID string, rentalTimestamp time.Time) (*domain.Rental, error) {
	args := m.Called(ctx, toolID, friendID, rentalTimestamp)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalRepository) Close(ctx context.Context, toolID string, devolutionTimestamp time.Time) (int64, error) {
	args := m.Called(ctx, toolID, devolutionTimestamp)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRentalRepository) HasOpenRentalForTool(ctx context.Context, toolID string) (bool, error) {
	args := m.Called(ctx, toolID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRentalRepository) HasOpenRentalForFriend(ctx context.Context, friendID string) (bool, error) {
	args := m.Called(ctx, friendID)
	return args.Bool(0), args.Error(1)
}

func (m *MockRentalRepository) CountOpenByOwner(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockRentalRepository) ListByOwner(ctx context.Context, userID string) ([]domain.RentalHistoryEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalHistoryEntry), args.Error(1)
}

func (m *MockRentalRepository) RankFriendsByOwner(ctx context.Context, userID string) ([]domain.FriendRankEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FriendRankEntry), args.Error(1)
}

type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateSessionToken(userID, username string) (string, error) {
	args := m.Called(userID, username)
	return args.String(0), args.Error(1)
}

func (m *MockTokenManager) ValidateToken(tokenString string) (*security.SessionClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.SessionClaims), args.Error(1)
}
