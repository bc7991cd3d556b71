package services

import (
	"context"
	"testing"

	"novabot/domain/entities"
	"novabot/domain/events"
	"novabot/domain/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankService_PurchaseRank_Success(t *testing.T) {
	ctx := context.Background()

	mockRankRepo := new(testhelpers.MockRankRepository)
	mockWallet := new(testhelpers.MockWalletRepository)
	publisher := &testhelpers.RecordingPublisher{}

	service := NewRankService(mockRankRepo, mockWallet, publisher)

	mockRankRepo.On("Get", ctx, int64(42), "uwu").Return(nil, nil)
	mockWallet.On("Debit", ctx, int64(42), int64(3000)).Return(nil)
	mockRankRepo.On("InsertIfAbsent", ctx, int64(42), "uwu", entities.RankTypePurchased).Return(true, nil)

	rank, err := service.PurchaseRank(ctx, 42, "uwu")
	require.NoError(t, err)
	assert.Equal(t, "uwu", rank.RankName)
	assert.Equal(t, entities.RankTypePurchased, rank.RankType)

	require.Len(t, publisher.Events, 1)
	purchased, ok := publisher.Events[0].(events.RankPurchasedEvent)
	require.True(t, ok)
	assert.Equal(t, int64(42), purchased.UserID)
	assert.Equal(t, "uwu", purchased.RankName)
	assert.Equal(t, int64(3000), purchased.Price)

	mockRankRepo.AssertExpectations(t)
	mockWallet.AssertExpectations(t)
}

func TestRankService_PurchaseRank_UnknownRank(t *testing.T) {
	ctx := context.Background()

	mockRankRepo := new(testhelpers.MockRankRepository)
	mockWallet := new(testhelpers.MockWalletRepository)
	publisher := &testhelpers.RecordingPublisher{}

	service := NewRankService(mockRankRepo, mockWallet, publisher)

	// "Nova Seed" is a level rank, not a shop item.
	_, err := service.PurchaseRank(ctx, 42, "Nova Seed")
	assert.ErrorIs(t, err, entities.ErrUnknownRank)

	_, err = service.PurchaseRank(ctx, 42, "no-such-rank")
	assert.ErrorIs(t, err, entities.ErrUnknownRank)

	assert.Empty(t, publisher.Events)
	mockWallet.AssertNotCalled(t, "Debit")
}

func TestRankService_PurchaseRank_AlreadyOwned(t *testing.T) {
	ctx := context.Background()

	mockRankRepo := new(testhelpers.MockRankRepository)
	mockWallet := new(testhelpers.MockWalletRepository)
	publisher := &testhelpers.RecordingPublisher{}

	service := NewRankService(mockRankRepo, mockWallet, publisher)

	mockRankRepo.On("Get", ctx, int64(42), "angel").Return(&entities.RankOwnership{
		UserID:   42,
		RankName: "angel",
		RankType: entities.RankTypePurchased,
	}, nil)

	_, err := service.PurchaseRank(ctx, 42, "angel")
	assert.ErrorIs(t, err, entities.ErrAlreadyOwned)
	assert.Empty(t, publisher.Events)
	mockWallet.AssertNotCalled(t, "Debit")
}

func TestRankService_PurchaseRank_InsufficientFunds(t *testing.T) {
	ctx := context.Background()

	mockRankRepo := new(testhelpers.MockRankRepository)
	mockWallet := new(testhelpers.MockWalletRepository)
	publisher := &testhelpers.RecordingPublisher{}

	service := NewRankService(mockRankRepo, mockWallet, publisher)

	mockRankRepo.On("Get", ctx, int64(42), "legendary").Return(nil, nil)
	mockWallet.On("Debit", ctx, int64(42), int64(20000)).Return(entities.ErrInsufficientFunds)

	_, err := service.PurchaseRank(ctx, 42, "legendary")
	assert.ErrorIs(t, err, entities.ErrInsufficientFunds)
	assert.Empty(t, publisher.Events)
	mockRankRepo.AssertNotCalled(t, "InsertIfAbsent")
}

func TestRankService_ReconcileLevelRanks_GrantsEveryEarnedThreshold(t *testing.T) {
	ctx := context.Background()

	mockRankRepo := new(testhelpers.MockRankRepository)
	mockWallet := new(testhelpers.MockWalletRepository)
	publisher := &testhelpers.RecordingPublisher{}

	service := NewRankService(mockRankRepo, mockWallet, publisher)

	// Level 12 entitles to thresholds 0, 5 and 10.
	mockRankRepo.On("InsertIfAbsent", ctx, int64(42), "Nova Seed", entities.RankTypeLevel).Return(true, nil)
	mockRankRepo.On("InsertIfAbsent", ctx, int64(42), "Blossoming Nova", entities.RankTypeLevel).Return(true, nil)
	mockRankRepo.On("InsertIfAbsent", ctx, int64(42), "Starlight Sprite", entities.RankTypeLevel).Return(true, nil)

	require.NoError(t, service.ReconcileLevelRanks(ctx, 42, 12))
	mockRankRepo.AssertExpectations(t)
	mockRankRepo.AssertNumberOfCalls(t, "InsertIfAbsent", 3)
}

func TestRankService_ReconcileLevelRanks_Idempotent(t *testing.T) {
	ctx := context.Background()

	mockRankRepo := new(testhelpers.MockRankRepository)
	mockWallet := new(testhelpers.MockWalletRepository)
	publisher := &testhelpers.RecordingPublisher{}

	service := NewRankService(mockRankRepo, mockWallet, publisher)

	// Already granted: the insert reports no row written and that is fine.
	mockRankRepo.On("InsertIfAbsent", ctx, int64(42), "Nova Seed", entities.RankTypeLevel).Return(false, nil)
	mockRankRepo.On("InsertIfAbsent", ctx, int64(42), "Blossoming Nova", entities.RankTypeLevel).Return(false, nil)

	require.NoError(t, service.ReconcileLevelRanks(ctx, 42, 7))
}

func TestRankService_EquipRank_Success(t *testing.T) {
	ctx := context.Background()

	mockRankRepo := new(testhelpers.MockRankRepository)
	mockWallet := new(testhelpers.MockWalletRepository)
	publisher := &testhelpers.RecordingPublisher{}

	service := NewRankService(mockRankRepo, mockWallet, publisher)

	mockRankRepo.On("Get", ctx, int64(42), "goddess").Return(&entities.RankOwnership{
		UserID:   42,
		RankName: "goddess",
		RankType: entities.RankTypePurchased,
	}, nil)
	mockRankRepo.On("ClearEquipped", ctx, int64(42)).Return(nil)
	mockRankRepo.On("SetEquipped", ctx, int64(42), "goddess").Return(true, nil)

	require.NoError(t, service.EquipRank(ctx, 42, "goddess"))
	mockRankRepo.AssertExpectations(t)
}

func TestRankService_EquipRank_NotOwned(t *testing.T) {
	ctx := context.Background()

	mockRankRepo := new(testhelpers.MockRankRepository)
	mockWallet := new(testhelpers.MockWalletRepository)
	publisher := &testhelpers.RecordingPublisher{}

	service := NewRankService(mockRankRepo, mockWallet, publisher)

	mockRankRepo.On("Get", ctx, int64(42), "divine").Return(nil, nil)

	err := service.EquipRank(ctx, 42, "divine")
	assert.ErrorIs(t, err, entities.ErrNotOwned)
	mockRankRepo.AssertNotCalled(t, "ClearEquipped")
}

func TestRankService_EquipRank_LevelRankRejected(t *testing.T) {
	ctx := context.Background()

	mockRankRepo := new(testhelpers.MockRankRepository)
	mockWallet := new(testhelpers.MockWalletRepository)
	publisher := &testhelpers.RecordingPublisher{}

	service := NewRankService(mockRankRepo, mockWallet, publisher)

	// Owned, but earned through levels: not equippable.
	mockRankRepo.On("Get", ctx, int64(42), "Nova Seed").Return(&entities.RankOwnership{
		UserID:   42,
		RankName: "Nova Seed",
		RankType: entities.RankTypeLevel,
	}, nil)

	err := service.EquipRank(ctx, 42, "Nova Seed")
	assert.ErrorIs(t, err, entities.ErrNotOwned)
	mockRankRepo.AssertNotCalled(t, "SetEquipped")
}

func TestRankService_UnequipRank(t *testing.T) {
	ctx := context.Background()

	mockRankRepo := new(testhelpers.MockRankRepository)
	mockWallet := new(testhelpers.MockWalletRepository)
	publisher := &testhelpers.RecordingPublisher{}

	service := NewRankService(mockRankRepo, mockWallet, publisher)

	mockRankRepo.On("ClearEquipped", ctx, int64(42)).Return(nil)

	require.NoError(t, service.UnequipRank(ctx, 42))
	mockRankRepo.AssertExpectations(t)
}
