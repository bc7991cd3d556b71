package testhelpers

import (
	"context"
	"time"

	"novabot/domain/entities"
	"novabot/domain/events"

	"github.com/stretchr/testify/mock"
)

// MockProgressionRepository is a mock implementation of ProgressionRepository
type MockProgressionRepository struct {
	mock.Mock
}

func (m *MockProgressionRepository) GetXP(ctx context.Context, serverID, userID int64) (int64, error) {
	args := m.Called(ctx, serverID, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProgressionRepository) AddXP(ctx context.Context, serverID, userID, amount int64) (int64, error) {
	args := m.Called(ctx, serverID, userID, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProgressionRepository) TopByXP(ctx context.Context, serverID int64, limit int) ([]*entities.UserProgression, error) {
	args := m.Called(ctx, serverID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.UserProgression), args.Error(1)
}

// MockWalletRepository is a mock implementation of WalletRepository
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) GetCoins(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWalletRepository) AddCoins(ctx context.Context, userID, amount int64) (int64, error) {
	args := m.Called(ctx, userID, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWalletRepository) Debit(ctx context.Context, userID, amount int64) error {
	args := m.Called(ctx, userID, amount)
	return args.Error(0)
}

func (m *MockWalletRepository) TopByCoins(ctx context.Context, limit int) ([]*entities.UserWallet, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.UserWallet), args.Error(1)
}

func (m *MockWalletRepository) TopByNetWorth(ctx context.Context, limit int) ([]*entities.NetWorth, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.NetWorth), args.Error(1)
}

// MockRankRepository is a mock implementation of RankRepository
type MockRankRepository struct {
	mock.Mock
}

func (m *MockRankRepository) Get(ctx context.Context, userID int64, rankName string) (*entities.RankOwnership, error) {
	args := m.Called(ctx, userID, rankName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RankOwnership), args.Error(1)
}

func (m *MockRankRepository) ListByUser(ctx context.Context, userID int64) ([]*entities.RankOwnership, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.RankOwnership), args.Error(1)
}

func (m *MockRankRepository) InsertIfAbsent(ctx context.Context, userID int64, rankName string, rankType entities.RankType) (bool, error) {
	args := m.Called(ctx, userID, rankName, rankType)
	return args.Bool(0), args.Error(1)
}

func (m *MockRankRepository) GetEquipped(ctx context.Context, userID int64) (*entities.RankOwnership, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RankOwnership), args.Error(1)
}

func (m *MockRankRepository) ClearEquipped(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockRankRepository) SetEquipped(ctx context.Context, userID int64, rankName string) (bool, error) {
	args := m.Called(ctx, userID, rankName)
	return args.Bool(0), args.Error(1)
}

// MockCooldownRepository is a mock implementation of CooldownRepository
type MockCooldownRepository struct {
	mock.Mock
}

func (m *MockCooldownRepository) TryStamp(ctx context.Context, userID int64, now time.Time, window time.Duration) (bool, error) {
	args := m.Called(ctx, userID, now, window)
	return args.Bool(0), args.Error(1)
}

// MockSparkleRepository is a mock implementation of SparkleRepository
type MockSparkleRepository struct {
	mock.Mock
}

func (m *MockSparkleRepository) Get(ctx context.Context, serverID, userID int64) (*entities.SparkleTally, error) {
	args := m.Called(ctx, serverID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SparkleTally), args.Error(1)
}

func (m *MockSparkleRepository) Increment(ctx context.Context, serverID, userID int64, tier entities.SparkleTier) error {
	args := m.Called(ctx, serverID, userID, tier)
	return args.Error(0)
}

func (m *MockSparkleRepository) TopByTotal(ctx context.Context, serverID int64, limit int) ([]*entities.SparkleTally, error) {
	args := m.Called(ctx, serverID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.SparkleTally), args.Error(1)
}

// MockRankService is a mock implementation of RankService
type MockRankService struct {
	mock.Mock
}

func (m *MockRankService) ReconcileLevelRanks(ctx context.Context, userID int64, level int) error {
	args := m.Called(ctx, userID, level)
	return args.Error(0)
}

func (m *MockRankService) PurchaseRank(ctx context.Context, userID int64, rankName string) (*entities.RankOwnership, error) {
	args := m.Called(ctx, userID, rankName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RankOwnership), args.Error(1)
}

func (m *MockRankService) EquipRank(ctx context.Context, userID int64, rankName string) error {
	args := m.Called(ctx, userID, rankName)
	return args.Error(0)
}

func (m *MockRankService) UnequipRank(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// RecordingPublisher captures published events for assertions.
type RecordingPublisher struct {
	Events []events.Event
}

func (p *RecordingPublisher) Publish(event events.Event) {
	p.Events = append(p.Events, event)
}
