package services

import (
	"context"
	"fmt"

	"novabot/domain/entities"
	"novabot/domain/events"
	"novabot/domain/interfaces"
)

type rankService struct {
	rankRepo       interfaces.RankRepository
	walletRepo     interfaces.WalletRepository
	eventPublisher interfaces.EventPublisher
}

// NewRankService creates a new rank service
func NewRankService(
	rankRepo interfaces.RankRepository,
	walletRepo interfaces.WalletRepository,
	eventPublisher interfaces.EventPublisher,
) interfaces.RankService {
	return &rankService{
		rankRepo:       rankRepo,
		walletRepo:     walletRepo,
		eventPublisher: eventPublisher,
	}
}

// ReconcileLevelRanks grants every level rank the user's level entitles them
// to. Insert-if-absent per threshold makes it idempotent, and it never
// removes a rank: grants are history even if level could somehow regress.
func (s *rankService) ReconcileLevelRanks(ctx context.Context, userID int64, level int) error {
	for _, rank := range entities.LevelRanksUpTo(level) {
		if _, err := s.rankRepo.InsertIfAbsent(ctx, userID, rank.Name, entities.RankTypeLevel); err != nil {
			return fmt.Errorf("failed to grant level rank %q to user %d: %w", rank.Name, userID, err)
		}
	}
	return nil
}

func (s *rankService) PurchaseRank(ctx context.Context, userID int64, rankName string) (*entities.RankOwnership, error) {
	price, ok := entities.ShopPrice(rankName)
	if !ok {
		return nil, entities.ErrUnknownRank
	}

	existing, err := s.rankRepo.Get(ctx, userID, rankName)
	if err != nil {
		return nil, fmt.Errorf("failed to check rank ownership for user %d: %w", userID, err)
	}
	if existing != nil {
		return nil, entities.ErrAlreadyOwned
	}

	// Debit and insert run in the caller's transaction: if either fails the
	// whole purchase rolls back, so coins are never lost without the rank.
	if err := s.walletRepo.Debit(ctx, userID, price); err != nil {
		return nil, err
	}

	inserted, err := s.rankRepo.InsertIfAbsent(ctx, userID, rankName, entities.RankTypePurchased)
	if err != nil {
		return nil, fmt.Errorf("failed to insert purchased rank %q for user %d: %w", rankName, userID, err)
	}
	if !inserted {
		return nil, entities.ErrAlreadyOwned
	}

	s.eventPublisher.Publish(events.NewRankPurchasedEvent(userID, rankName, price))

	return &entities.RankOwnership{
		UserID:   userID,
		RankName: rankName,
		RankType: entities.RankTypePurchased,
	}, nil
}

func (s *rankService) EquipRank(ctx context.Context, userID int64, rankName string) error {
	rank, err := s.rankRepo.Get(ctx, userID, rankName)
	if err != nil {
		return fmt.Errorf("failed to check rank ownership for user %d: %w", userID, err)
	}
	// Level ranks are informational history and cannot be equipped.
	if rank == nil || rank.RankType != entities.RankTypePurchased {
		return entities.ErrNotOwned
	}

	if err := s.rankRepo.ClearEquipped(ctx, userID); err != nil {
		return fmt.Errorf("failed to unequip ranks for user %d: %w", userID, err)
	}

	set, err := s.rankRepo.SetEquipped(ctx, userID, rankName)
	if err != nil {
		return fmt.Errorf("failed to equip rank %q for user %d: %w", rankName, userID, err)
	}
	if !set {
		return entities.ErrNotOwned
	}
	return nil
}

func (s *rankService) UnequipRank(ctx context.Context, userID int64) error {
	if err := s.rankRepo.ClearEquipped(ctx, userID); err != nil {
		return fmt.Errorf("failed to unequip ranks for user %d: %w", userID, err)
	}
	return nil
}
